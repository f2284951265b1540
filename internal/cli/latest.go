package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/podiumd/versionwatch/internal/config"
	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/integrations"
)

// Output formats.
const (
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// latestCommand creates the latest command.
func (c *CLI) latestCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "latest [source...]",
		Short: "Print the latest upstream version of each source",
		Long: `Fetch every source in the catalog (or only the named ones) one after
another and print the highest version found, with the URL it came from.
A source without any matching version prints "-".`,
		Example: `  versionwatch latest
  versionwatch latest keycloak clamav --format markdown`,
		ValidArgsFunction: c.completeSources,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatTable, formatMarkdown, formatJSON); err != nil {
				return err
			}
			catalog, err := c.catalog()
			if err != nil {
				return err
			}
			specs, err := catalog.Select(args)
			if err != nil {
				return err
			}

			opts, closeCache, err := c.options(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCache()

			results, err := c.checkSources(cmd.Context(), specs, opts)
			if err != nil {
				return err
			}

			return writeLatest(cmd.OutOrStdout(), results, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, markdown or json")
	return cmd
}

// checkSources runs the sources in catalog order. Without --verbose a
// spinner names the source being fetched.
func (c *CLI) checkSources(ctx context.Context, specs []config.SourceSpec, opts integrations.Options) ([]extract.Result, error) {
	prog := newProgress(loggerFromContext(ctx))

	var (
		sp     *spinner
		before func(config.SourceSpec)
	)
	if !c.settings.Verbose {
		sp = newSpinner(ctx, "Checking sources")
		sp.Start()
		before = func(s config.SourceSpec) { sp.Update("Checking %s", s.Name) }
	}
	results, err := config.CheckEach(ctx, specs, opts, before)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Checked %d sources", len(results)))
	return results, nil
}

func writeLatest(w io.Writer, results []extract.Result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatMarkdown:
		var b strings.Builder
		b.WriteString("| Component | Latest | URL |\n|---|---|---|\n")
		for _, row := range latestRows(results) {
			b.WriteString("| " + strings.Join(row, " | ") + " |\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	default:
		_, err := fmt.Fprintln(w, renderTable([]string{"Component", "Latest", "URL"}, latestRows(results), 1))
		return err
	}
}

func latestRows(results []extract.Result) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Latest == nil {
			rows = append(rows, []string{r.Name, iconNone, iconNone})
			continue
		}
		rows = append(rows, []string{r.Name, r.Latest.Raw, r.Latest.SourceURL})
	}
	return rows
}

// completeSources completes source names from the catalog.
func (c *CLI) completeSources(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	path, _ := cmd.Flags().GetString(config.KeyCatalog)
	catalog, err := config.LoadCatalog(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, s := range catalog.Sources {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(toComplete)) {
			names = append(names, s.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
