package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/podiumd/versionwatch/pkg/errors"
	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/extract/dockerhub"
	"github.com/podiumd/versionwatch/pkg/extract/heading"
	"github.com/podiumd/versionwatch/pkg/extract/releaselist"
	"github.com/podiumd/versionwatch/pkg/extract/releasenotes"
	"github.com/podiumd/versionwatch/pkg/extract/tagpage"
	"github.com/podiumd/versionwatch/pkg/integrations"
)

//go:embed sources.toml
var defaultCatalog []byte

// Source kinds.
const (
	KindTagPage      = "tagpage"
	KindReleaseNotes = "releasenotes"
	KindHeading      = "heading"
	KindReleaseList  = "releaselist"
	KindDockerHub    = "dockerhub"
)

// Kinds lists the supported source kinds.
var Kinds = []string{KindTagPage, KindReleaseNotes, KindHeading, KindReleaseList, KindDockerHub}

// SourceSpec describes one upstream source. Optional fields override the
// extractor defaults and are ignored by kinds that do not use them.
type SourceSpec struct {
	Name    string `toml:"name"`
	Kind    string `toml:"kind"`
	Locator string `toml:"locator"`
	Prefix  string `toml:"prefix"`

	Selector  string `toml:"selector"`  // tagpage
	Pattern   string `toml:"pattern"`   // releasenotes
	Marker    string `toml:"marker"`    // heading
	Label     string `toml:"label"`     // heading
	Container string `toml:"container"` // releaselist
	PageSize  int    `toml:"page_size"` // dockerhub
	MaxPages  int    `toml:"max_pages"` // dockerhub
}

// Catalog is an ordered list of sources.
type Catalog struct {
	Sources []SourceSpec `toml:"source"`
}

// LoadCatalog reads the catalog at path, or the embedded default when path
// is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	name := "embedded sources.toml"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read catalog")
		}
		data, name = b, path
	}
	return ParseCatalog(data, name)
}

// ParseCatalog decodes and validates a TOML catalog. name is used in errors.
func ParseCatalog(data []byte, name string) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", name)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every source is complete and names are unique
// (case-insensitively).
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Sources))
	for i, s := range c.Sources {
		if s.Name == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "source #%d: name is required", i+1)
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return errs.New(errs.ErrCodeInvalidConfig, "source %q: duplicate name", s.Name)
		}
		seen[key] = true
		if s.Locator == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "source %q: locator is required", s.Name)
		}
		if !slices.Contains(Kinds, s.Kind) {
			return errs.New(errs.ErrCodeInvalidConfig, "source %q: unknown kind %q (want one of %s)",
				s.Name, s.Kind, strings.Join(Kinds, ", "))
		}
		if s.Pattern != "" {
			if _, err := compilePattern(s.Pattern); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidConfig, err, "source %q: pattern", s.Name)
			}
		}
	}
	return nil
}

// Lookup finds a source by name, ignoring case.
func (c *Catalog) Lookup(name string) (SourceSpec, bool) {
	for _, s := range c.Sources {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return SourceSpec{}, false
}

// Select returns the named sources in the given order, or all sources when
// names is empty. Unknown names yield [errs.ErrCodeSourceNotFound].
func (c *Catalog) Select(names []string) ([]SourceSpec, error) {
	if len(names) == 0 {
		return c.Sources, nil
	}
	out := make([]SourceSpec, 0, len(names))
	for _, n := range names {
		s, ok := c.Lookup(n)
		if !ok {
			return nil, errs.New(errs.ErrCodeSourceNotFound, "unknown source: %s", n)
		}
		out = append(out, s)
	}
	return out, nil
}

// Build creates the extractor for s.
func (s SourceSpec) Build(opts integrations.Options) (extract.Source, error) {
	switch s.Kind {
	case KindTagPage:
		e := tagpage.New(opts, s.Locator, s.Prefix)
		if s.Selector != "" {
			e.Selector = s.Selector
		}
		return e, nil
	case KindReleaseNotes:
		e := releasenotes.New(opts, s.Locator, s.Prefix)
		if s.Pattern != "" {
			re, err := compilePattern(s.Pattern)
			if err != nil {
				return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "source %q: pattern", s.Name)
			}
			e.Pattern = re
		}
		return e, nil
	case KindHeading:
		e := heading.New(opts, s.Locator, s.Prefix)
		if s.Marker != "" {
			e.Marker = s.Marker
		}
		if s.Label != "" {
			e.Label = s.Label
		}
		return e, nil
	case KindReleaseList:
		e := releaselist.New(opts, s.Locator, s.Prefix)
		if s.Container != "" {
			e.Container = s.Container
		}
		return e, nil
	case KindDockerHub:
		e := dockerhub.New(opts, s.Locator, s.Prefix)
		if s.PageSize > 0 {
			e.PageSize = s.PageSize
		}
		if s.MaxPages > 0 {
			e.MaxPages = s.MaxPages
		}
		return e, nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidConfig, "source %q: unknown kind %q", s.Name, s.Kind)
	}
}

// compilePattern compiles a token pattern, which must have a capture group.
func compilePattern(p string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q has no capture group", p)
	}
	return re, nil
}
