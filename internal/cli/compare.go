package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/podiumd/versionwatch/pkg/compare"
	"github.com/podiumd/versionwatch/pkg/manifest"
)

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		oldVersion   string
		newVersion   string
		newBranch    string
		dependencies bool
		includeAdded bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the component versions of two PodiumD releases",
		Long: `Build the component lists of two releases from the Helm chart and print a
markdown table with one row per component of the old release. Changed
versions are printed in bold.

Without --new-version the new release is read from --new-version-branch, or
from main when no branch is given.`,
		Example: `  versionwatch compare -o 4.1.0
  versionwatch compare -o 4.1.0 -n 4.2.0 --dependencies
  versionwatch compare -o 4.1.0 -b release/4.3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeCache, err := c.options(cmd.Context())
			if err != nil {
				return err
			}
			defer closeCache()

			b := c.builder(opts)
			old, err := b.Build(cmd.Context(), manifest.Ref{Version: oldVersion})
			if err != nil {
				return err
			}
			updated, err := b.Build(cmd.Context(), manifest.Ref{Version: newVersion, Branch: newBranch})
			if err != nil {
				return err
			}

			return writeComparison(cmd.OutOrStdout(), old, updated, dependencies, compare.Options{IncludeAdded: includeAdded})
		},
	}

	cmd.Flags().StringVarP(&oldVersion, "old-version", "o", "", "old release version (required)")
	cmd.Flags().StringVarP(&newVersion, "new-version", "n", "", "new release version (default: latest on main)")
	cmd.Flags().StringVarP(&newBranch, "new-version-branch", "b", "", "branch to read the new release from")
	cmd.Flags().BoolVar(&dependencies, "dependencies", false, "also compare chart dependencies")
	cmd.Flags().BoolVar(&includeAdded, "include-added", false, "also list components that only exist in the new release")
	_ = cmd.MarkFlagRequired("old-version")

	return cmd
}

func writeComparison(w io.Writer, old, updated *manifest.Version, dependencies bool, opts compare.Options) error {
	if _, err := io.WriteString(w, compare.RenderDiffTable(old, updated, opts)); err != nil {
		return err
	}
	if !dependencies {
		return nil
	}
	_, err := fmt.Fprint(w, "\n"+compare.RenderDependencyTable(old, updated, opts))
	return err
}
