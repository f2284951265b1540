package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/podiumd/versionwatch/pkg/manifest"
)

// componentsCommand creates the components command.
func (c *CLI) componentsCommand() *cobra.Command {
	var (
		version string
		branch  string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Print the component versions of one PodiumD release",
		Example: `  versionwatch components
  versionwatch components -n 4.2.0 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatTable, formatMarkdown, formatJSON); err != nil {
				return err
			}
			opts, closeCache, err := c.options(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCache()

			v, err := c.builder(opts).Build(cmd.Context(), manifest.Ref{Version: version, Branch: branch})
			if err != nil {
				return err
			}
			return writeComponents(cmd.OutOrStdout(), v, format)
		},
	}

	cmd.Flags().StringVarP(&version, "new-version", "n", "", "release version (default: main)")
	cmd.Flags().StringVarP(&branch, "new-version-branch", "b", "", "branch to read the release from")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, markdown or json")
	return cmd
}

func writeComponents(w io.Writer, v *manifest.Version, format string) error {
	rows := make([][]string, 0, len(v.Components))
	for _, cv := range manifest.Sorted(v.Components) {
		rows = append(rows, []string{cv.Name, cv.Version})
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatMarkdown:
		var b strings.Builder
		b.WriteString("| Component | PodiumD " + v.AppVersion + " |\n|---|---|\n")
		for _, row := range rows {
			b.WriteString("| " + row[0] + " | " + row[1] + " |\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	default:
		printKeyValue("Ref", v.SourceRef)
		printKeyValue("Release", v.ReleaseVersion)
		printKeyValue("App version", v.AppVersion)
		_, err := fmt.Fprintln(w, renderTable([]string{"Component", "Version"}, rows, 1))
		return err
	}
}
