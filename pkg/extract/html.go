package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/podiumd/versionwatch/pkg/integrations"
)

// FetchDocument GETs pageURL through client and parses the body as HTML.
func FetchDocument(ctx context.Context, client *integrations.Client, pageURL string) (*goquery.Document, error) {
	body, err := client.GetText(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", pageURL, err)
	}
	return doc, nil
}

// Text returns the whitespace-trimmed text of sel.
func Text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// Link returns the trimmed text of the first anchor in sel and its href
// resolved against pageURL. ok is false when sel contains no anchor.
func Link(sel *goquery.Selection, pageURL string) (Candidate, bool) {
	a := sel.Find("a").First()
	if a.Length() == 0 {
		return Candidate{}, false
	}
	href, _ := a.Attr("href")
	return Candidate{
		Token: Text(a),
		URL:   integrations.ResolveURL(pageURL, href),
	}, true
}
