// Package publiccode updates the release fields of a publiccode.yaml file.
//
// Only softwareVersion and releaseDate are touched; every other key keeps
// its value and position.
package publiccode

import (
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"

	errs "github.com/podiumd/versionwatch/pkg/errors"
)

const (
	DefaultFile = "publiccode.yml"

	keyVersion = "softwareVersion"
	keyDate    = "releaseDate"
	dateLayout = "2006-01-02"
)

// Config describes one update. It is filled once at startup.
type Config struct {
	File    string // Path to publiccode.yaml; DefaultFile when empty
	Version string // New softwareVersion, semver with optional "v" prefix
	Force   bool   // Allow setting a version lower than the current one
}

// Update sets softwareVersion to cfg.Version and releaseDate to now in the
// file at path.
//
// Returns [errs.ErrCodeInvalidInput] when the version is not valid semver or
// lower than the version already in the file (unless cfg.Force), and
// [errs.ErrCodeInvalidManifest] when the file is not a YAML mapping.
func Update(path string, cfg Config, now time.Time) error {
	next, err := semver.NewVersion(cfg.Version)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid version %q", cfg.Version)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidManifest, err, "parse %q", path)
	}

	if cur, ok := lookup(doc, keyVersion); ok && !cfg.Force {
		if prev, err := semver.NewVersion(fmt.Sprint(cur)); err == nil && next.LessThan(prev) {
			return errs.New(errs.ErrCodeInvalidInput, "refusing to downgrade %s from %s to %s", keyVersion, prev, next)
		}
	}

	doc = set(doc, keyVersion, cfg.Version)
	doc = set(doc, keyDate, now.Format(dateLayout))

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

func lookup(doc yaml.MapSlice, key string) (any, bool) {
	for _, item := range doc {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value, true
		}
	}
	return nil, false
}

// set replaces key in place or appends it.
func set(doc yaml.MapSlice, key string, value any) yaml.MapSlice {
	for i, item := range doc {
		if k, ok := item.Key.(string); ok && k == key {
			doc[i].Value = value
			return doc
		}
	}
	return append(doc, yaml.MapItem{Key: key, Value: value})
}
