package manifest

import (
	"maps"
	"slices"
	"sort"
)

// ComponentVersion pairs a component name with its version string.
// The version is kept exactly as written in the manifest.
type ComponentVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Version is the set of component versions of one release.
type Version struct {
	SourceRef      string                      `json:"source_ref"`
	ReleaseVersion string                      `json:"release_version"`
	AppVersion     string                      `json:"app_version,omitempty"`
	Components     map[string]ComponentVersion `json:"components"`
	Dependencies   map[string]ComponentVersion `json:"dependencies,omitempty"`
}

// SortByName sorts components by name.
func SortByName(cs []ComponentVersion) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
}

// Sorted returns the values of m ordered by name.
func Sorted(m map[string]ComponentVersion) []ComponentVersion {
	out := slices.Collect(maps.Values(m))
	SortByName(out)
	return out
}

// Lookup returns the version of name in m, or "" when absent.
func Lookup(m map[string]ComponentVersion, name string) string {
	return m[name].Version
}
