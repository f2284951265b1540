// Package releasenotes reads the latest release from a free-form release
// notes page, such as the BRP API changelog, where versions appear in
// running text as "Versie 2.1" or "Version 2.1.3".
package releasenotes

import (
	"context"
	"regexp"

	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/version"
)

// DefaultPattern matches Dutch and English version phrases. The first
// capture group is the version token.
var DefaultPattern = regexp.MustCompile(`Versi(?:e|on)? (\d+(?:\.\d+)*)`)

// Extractor scans the visible text of a page for version phrases.
type Extractor struct {
	client *integrations.Client

	PageURL string
	Prefix  string
	Pattern *regexp.Regexp // First capture group is the token
}

// New creates a release notes extractor for pageURL.
func New(opts integrations.Options, pageURL, prefix string) *Extractor {
	return &Extractor{
		client:  opts.NewClient("releasenotes", nil),
		PageURL: pageURL,
		Prefix:  prefix,
		Pattern: DefaultPattern,
	}
}

func (e *Extractor) Name() string { return e.PageURL }

// Candidates returns every pattern match in page order. All candidates
// point at the page itself.
func (e *Extractor) Candidates(ctx context.Context) ([]extract.Candidate, error) {
	doc, err := extract.FetchDocument(ctx, e.client, e.PageURL)
	if err != nil {
		return nil, err
	}

	var out []extract.Candidate
	for _, m := range e.Pattern.FindAllStringSubmatch(doc.Text(), -1) {
		if len(m) < 2 {
			continue
		}
		out = append(out, extract.Candidate{Token: m[1], URL: e.PageURL})
	}
	return out, nil
}

func (e *Extractor) LatestVersion(ctx context.Context) (*version.Record, error) {
	return extract.Latest(ctx, e, e.Prefix)
}
