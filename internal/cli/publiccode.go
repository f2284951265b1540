package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/podiumd/versionwatch/internal/config"
	errs "github.com/podiumd/versionwatch/pkg/errors"
	"github.com/podiumd/versionwatch/pkg/publiccode"
)

// publiccodeCommand creates the publiccode command.
func (c *CLI) publiccodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publiccode",
		Short: "Set softwareVersion and releaseDate in publiccode.yml",
		Long: `Update softwareVersion and releaseDate (today) in a publiccode.yml file.

The version comes from --software-version or VERSIONWATCH_PUBLICCODE_VERSION.
Lowering the version is refused unless --force is given.`,
		Example: `  versionwatch publiccode --software-version 4.2.0
  VERSIONWATCH_PUBLICCODE_VERSION=4.2.0 versionwatch publiccode --file publiccode.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings.Publiccode
			if cfg.Version == "" {
				return errs.New(errs.ErrCodeInvalidInput, "no version given (use --software-version or VERSIONWATCH_PUBLICCODE_VERSION)")
			}
			if err := publiccode.Update(cfg.File, cfg, time.Now()); err != nil {
				return err
			}
			printSuccess("Updated %s to %s", StyleTitle.Render("publiccode"), cfg.Version)
			printFile(cfg.File)
			return nil
		},
	}

	cmd.Flags().String("file", publiccode.DefaultFile, "path to publiccode.yml")
	cmd.Flags().String("software-version", "", "new softwareVersion")
	cmd.Flags().Bool("force", false, "allow lowering the version")
	c.bind(cmd.Flags(), config.KeyPubliccodeFile, "file")
	c.bind(cmd.Flags(), config.KeyPubliccodeVersion, "software-version")
	c.bind(cmd.Flags(), config.KeyPubliccodeForce, "force")

	return cmd
}
