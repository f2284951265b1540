// Package compare renders the component differences between two releases
// as markdown tables.
//
// Rows are driven by the old release: every component of old appears once,
// in name order, next to its value in the new release (empty when absent).
// When the two strings differ the new value is emphasized. Values are
// compared as strings; "24.0" and "24" differ.
//
// Components that exist only in the new release are left out unless
// [Options.IncludeAdded] is set.
package compare

import (
	"maps"
	"slices"
	"strings"

	"github.com/podiumd/versionwatch/pkg/manifest"
)

// ProductLabel prefixes the version column headers.
const ProductLabel = "PodiumD"

// Options controls table rendering.
type Options struct {
	// IncludeAdded appends components present only in the new release,
	// with an empty old cell.
	IncludeAdded bool
}

// Row is one aligned component.
type Row struct {
	Name    string
	Old     string
	New     string
	Changed bool
}

// Rows aligns old against updated following the rules of the package doc.
func Rows(old, updated map[string]manifest.ComponentVersion, opts Options) []Row {
	var rows []Row
	for _, name := range slices.Sorted(maps.Keys(old)) {
		o, n := old[name].Version, manifest.Lookup(updated, name)
		rows = append(rows, Row{Name: name, Old: o, New: n, Changed: o != n})
	}
	if opts.IncludeAdded {
		for _, name := range slices.Sorted(maps.Keys(updated)) {
			if _, ok := old[name]; ok {
				continue
			}
			rows = append(rows, Row{Name: name, New: updated[name].Version, Changed: true})
		}
	}
	return rows
}

// RenderDiffTable renders the component table of two releases.
func RenderDiffTable(old, updated *manifest.Version, opts Options) string {
	return render(old.AppVersion, updated.AppVersion, Rows(old.Components, updated.Components, opts))
}

// RenderDependencyTable renders the chart dependency table of two releases.
func RenderDependencyTable(old, updated *manifest.Version, opts Options) string {
	return render(old.AppVersion, updated.AppVersion, Rows(old.Dependencies, updated.Dependencies, opts))
}

func render(oldApp, newApp string, rows []Row) string {
	var b strings.Builder
	b.WriteString("| Component | " + ProductLabel + " " + oldApp + " | " + ProductLabel + " " + newApp + " |\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range rows {
		n := r.New
		if r.Changed {
			n = "**" + n + "**"
		}
		b.WriteString("| " + r.Name + " | " + r.Old + " | " + n + " |\n")
	}
	return b.String()
}
