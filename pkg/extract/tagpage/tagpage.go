// Package tagpage reads the latest release from a GitHub tag listing page.
//
// The page at https://github.com/<owner>/<repo>/tags lists one entry per
// tag. Each entry's first link carries the tag name as its text and points
// at the tag's release page.
package tagpage

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/version"
)

const (
	// DefaultBaseURL is the GitHub web root.
	DefaultBaseURL = "https://github.com"

	// DefaultSelector matches tag entries in both the classic and the
	// current GitHub tag page layouts.
	DefaultSelector = "div.commit, div.Box-row"
)

// Extractor scrapes a GitHub tag listing page.
type Extractor struct {
	client *integrations.Client

	Slug     string // "owner/repo"
	Prefix   string // Required tag prefix such as "v" (may be empty)
	Selector string // CSS selector for tag entries
	BaseURL  string // Web root; DefaultBaseURL unless overridden in tests
}

// New creates a tag page extractor for slug.
func New(opts integrations.Options, slug, prefix string) *Extractor {
	return &Extractor{
		client:   opts.NewClient("tagpage", nil),
		Slug:     strings.Trim(slug, "/"),
		Prefix:   prefix,
		Selector: DefaultSelector,
		BaseURL:  DefaultBaseURL,
	}
}

// Name returns the repository slug.
func (e *Extractor) Name() string { return e.Slug }

// URL returns the tag listing page address.
func (e *Extractor) URL() string {
	return fmt.Sprintf("%s/%s/tags", strings.TrimSuffix(e.BaseURL, "/"), e.Slug)
}

// Candidates returns the first link of every tag entry, in page order.
func (e *Extractor) Candidates(ctx context.Context) ([]extract.Candidate, error) {
	pageURL := e.URL()
	doc, err := extract.FetchDocument(ctx, e.client, pageURL)
	if err != nil {
		return nil, err
	}

	var out []extract.Candidate
	doc.Find(e.Selector).Each(func(_ int, entry *goquery.Selection) {
		if c, ok := extract.Link(entry, pageURL); ok {
			out = append(out, c)
		}
	})
	return out, nil
}

// LatestVersion returns the highest tag matching Prefix, or nil if none does.
func (e *Extractor) LatestVersion(ctx context.Context) (*version.Record, error) {
	return extract.Latest(ctx, e, e.Prefix)
}
