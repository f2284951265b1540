package extract

import (
	"context"
	"strings"
	"time"

	"github.com/podiumd/versionwatch/pkg/observability"
	"github.com/podiumd/versionwatch/pkg/version"
)

// Candidate is one raw version token scraped from a source, together with
// the absolute URL it points to.
type Candidate struct {
	Token string
	URL   string
}

// Result is the outcome of checking one named source. Latest is nil when
// the source had no matching candidates.
type Result struct {
	Name   string          `json:"name"`
	Latest *version.Record `json:"latest"`
}

// Extractor fetches the raw version candidates of a single source.
//
// Implementations perform one logical fetch per call and hold no mutable
// state between calls. Candidates are returned in source order; that order
// decides ties during selection.
type Extractor interface {
	// Name identifies the source in logs and hooks.
	Name() string

	// Candidates fetches the source and returns every token matched by the
	// variant's structural rule. An empty result is not an error.
	Candidates(ctx context.Context) ([]Candidate, error)
}

// Source is an Extractor that knows its own required prefix.
type Source interface {
	Extractor
	LatestVersion(ctx context.Context) (*version.Record, error)
}

// Latest fetches the candidates of e and returns the highest version among
// those that match prefix. It returns (nil, nil) when no candidate survives.
func Latest(ctx context.Context, e Extractor, prefix string) (*version.Record, error) {
	hooks := observability.Extract()
	name := e.Name()
	hooks.OnExtractStart(ctx, name)
	start := time.Now()

	candidates, err := e.Candidates(ctx)
	if err != nil {
		hooks.OnExtractComplete(ctx, name, 0, "", time.Since(start), err)
		return nil, err
	}

	latest := Select(candidates, prefix)
	hooks.OnExtractComplete(ctx, name, len(candidates), latest.String(), time.Since(start), nil)
	return latest, nil
}

// Select filters candidates by prefix, parses the survivors and returns the
// stable maximum. The first candidate wins ties and incomparable pairs.
func Select(candidates []Candidate, prefix string) *version.Record {
	var records []*version.Record
	for _, c := range Filter(candidates, prefix) {
		records = append(records, version.Parse(c.Token, prefix, c.URL))
	}
	return version.Latest(records)
}

// Filter keeps the candidates whose token starts with prefix followed by an
// ASCII digit. Order is preserved.
func Filter(candidates []Candidate, prefix string) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if Matches(c.Token, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether token starts with prefix and the remainder starts
// with an ASCII digit.
func Matches(token, prefix string) bool {
	rest, ok := strings.CutPrefix(token, prefix)
	return ok && rest != "" && rest[0] >= '0' && rest[0] <= '9'
}
