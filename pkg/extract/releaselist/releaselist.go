// Package releaselist reads the latest release from a page that lists one
// release per list item, such as the PostgreSQL release notes index.
package releaselist

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/version"
)

// DefaultContainer selects the list holding the release items.
const DefaultContainer = "#release-notes ul"

// Extractor reads the first link of every item in the container list.
type Extractor struct {
	client *integrations.Client

	PageURL   string
	Prefix    string
	Container string
}

// New creates a release list extractor for pageURL.
func New(opts integrations.Options, pageURL, prefix string) *Extractor {
	return &Extractor{
		client:    opts.NewClient("releaselist", nil),
		PageURL:   pageURL,
		Prefix:    prefix,
		Container: DefaultContainer,
	}
}

func (e *Extractor) Name() string { return e.PageURL }

// Candidates returns the first link of each list item. Hrefs are resolved
// against PageURL. Items without a link are skipped.
func (e *Extractor) Candidates(ctx context.Context) ([]extract.Candidate, error) {
	doc, err := extract.FetchDocument(ctx, e.client, e.PageURL)
	if err != nil {
		return nil, err
	}

	var out []extract.Candidate
	doc.Find(e.Container).Find("li").Each(func(_ int, li *goquery.Selection) {
		if c, ok := extract.Link(li, e.PageURL); ok {
			out = append(out, c)
		}
	})
	return out, nil
}

func (e *Extractor) LatestVersion(ctx context.Context) (*version.Record, error) {
	return extract.Latest(ctx, e, e.Prefix)
}
