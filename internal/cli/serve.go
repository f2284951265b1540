package cli

import (
	"github.com/spf13/cobra"

	"github.com/podiumd/versionwatch/internal/config"
	"github.com/podiumd/versionwatch/internal/server"
	"github.com/podiumd/versionwatch/pkg/buildinfo"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the version checks over HTTP",
		Long: `Start a read-only HTTP API:

  GET /healthz
  GET /api/v1/latest
  GET /api/v1/latest/{name}
  GET /api/v1/components?version=&branch=
  GET /api/v1/compare?old=&new=&branch=`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalog()
			if err != nil {
				return err
			}
			opts, closeCache, err := c.options(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCache()

			srv := server.New(server.Config{
				Catalog: catalog,
				Builder: c.builder(opts),
				Options: opts,
				Logger:  c.Logger,
			})
			printInfo("Serving on %s", StyleLink.Render(c.settings.Addr))
			printDetail("%s", buildinfo.String())
			return srv.ListenAndServe(cmd.Context(), c.settings.Addr)
		},
	}

	cmd.Flags().String(config.KeyAddr, config.DefaultAddr, "listen address")
	c.bindFlags(cmd.Flags(), config.KeyAddr)
	return cmd
}
