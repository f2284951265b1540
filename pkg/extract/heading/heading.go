// Package heading reads the latest release from a page whose release
// sections are headings with a marker id, such as the KvK API release
// notes:
//
//	<h2 id="release-1-4-0">Release 1.4.0</h2>
//
// The token is the heading text with the label removed; the candidate URL
// is the page URL with the heading id as fragment.
package heading

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/version"
)

const (
	DefaultMarker = "release-"
	DefaultLabel  = "Release"
)

const headings = "h1, h2, h3, h4, h5, h6"

// Extractor scans headings whose id starts with Marker.
type Extractor struct {
	client *integrations.Client

	PageURL string
	Prefix  string
	Marker  string // Required id prefix
	Label   string // Text removed from the front of the heading
}

// New creates a heading extractor for pageURL with the default marker and label.
func New(opts integrations.Options, pageURL, prefix string) *Extractor {
	return &Extractor{
		client:  opts.NewClient("heading", nil),
		PageURL: pageURL,
		Prefix:  prefix,
		Marker:  DefaultMarker,
		Label:   DefaultLabel,
	}
}

func (e *Extractor) Name() string { return e.PageURL }

// Candidates returns one candidate per marked heading, in page order.
func (e *Extractor) Candidates(ctx context.Context) ([]extract.Candidate, error) {
	doc, err := extract.FetchDocument(ctx, e.client, e.PageURL)
	if err != nil {
		return nil, err
	}

	base, _, _ := strings.Cut(e.PageURL, "#")
	var out []extract.Candidate
	doc.Find(headings).Each(func(_ int, h *goquery.Selection) {
		id, ok := h.Attr("id")
		if !ok || !strings.HasPrefix(id, e.Marker) {
			return
		}
		out = append(out, extract.Candidate{
			Token: e.token(extract.Text(h)),
			URL:   base + "#" + id,
		})
	})
	return out, nil
}

func (e *Extractor) token(text string) string {
	return strings.TrimSpace(strings.TrimPrefix(text, e.Label))
}

func (e *Extractor) LatestVersion(ctx context.Context) (*version.Record, error) {
	return extract.Latest(ctx, e, e.Prefix)
}
