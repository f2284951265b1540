// Package dockerhub reads the latest image tag from the Docker Hub tags API.
//
// Tags are requested most recently updated first:
//
//	GET /v2/repositories/<namespace>/<repo>/tags?page=1&page_size=100&ordering=last_updated
//
// Every returned tag is a candidate; the shared prefix and leading-digit
// filter still applies, so tags such as "latest" or "alpine" never win.
// Candidate URLs point at the layer browser for the tag's digest.
package dockerhub

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/version"
)

const (
	DefaultBaseURL  = "https://hub.docker.com"
	DefaultPageSize = 100
	DefaultMaxPages = 1

	// officialNamespace holds single-name repositories such as "postgres".
	officialNamespace = "library"
)

// Extractor lists tags of one Docker Hub repository.
type Extractor struct {
	client *integrations.Client

	Namespace string
	Repo      string
	Prefix    string
	PageSize  int
	MaxPages  int
	BaseURL   string // API root; also used for layer URLs
}

// New creates an extractor for repository, given as "namespace/repo" or
// as a single official image name.
func New(opts integrations.Options, repository, prefix string) *Extractor {
	ns, repo := SplitRepository(repository)
	return &Extractor{
		client:    opts.NewClient("dockerhub", map[string]string{"Accept": "application/json"}),
		Namespace: ns,
		Repo:      repo,
		Prefix:    prefix,
		PageSize:  DefaultPageSize,
		MaxPages:  DefaultMaxPages,
		BaseURL:   DefaultBaseURL,
	}
}

// SplitRepository splits "namespace/repo". A name without a slash is an
// official image in the "library" namespace.
func SplitRepository(repository string) (namespace, repo string) {
	repository = strings.Trim(repository, "/")
	if ns, r, ok := strings.Cut(repository, "/"); ok {
		return ns, r
	}
	return officialNamespace, repository
}

// Name returns "namespace/repo".
func (e *Extractor) Name() string { return e.Namespace + "/" + e.Repo }

type tagsPage struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []tag   `json:"results"`
}

type tag struct {
	Name   string  `json:"name"`
	Digest string  `json:"digest"`
	Images []image `json:"images"`
}

type image struct {
	Digest string `json:"digest"`
}

func (t tag) digest() string {
	if t.Digest != "" {
		return t.Digest
	}
	for _, img := range t.Images {
		if img.Digest != "" {
			return img.Digest
		}
	}
	return ""
}

// Candidates returns the tags of up to MaxPages pages, in API order.
func (e *Extractor) Candidates(ctx context.Context) ([]extract.Candidate, error) {
	var out []extract.Candidate
	for page := 1; page <= max(e.MaxPages, 1); page++ {
		var resp tagsPage
		if err := e.client.Get(ctx, e.pageURL(page), &resp); err != nil {
			return nil, err
		}
		for _, t := range resp.Results {
			out = append(out, extract.Candidate{Token: t.Name, URL: e.LayerURL(t.Name, t.digest())})
		}
		if resp.Next == nil || *resp.Next == "" {
			break
		}
	}
	return out, nil
}

func (e *Extractor) pageURL(page int) string {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("page_size", fmt.Sprint(e.PageSize))
	q.Set("ordering", "last_updated")
	return fmt.Sprintf("%s/v2/repositories/%s/%s/tags?%s",
		strings.TrimSuffix(e.BaseURL, "/"),
		integrations.URLEncode(e.Namespace), integrations.URLEncode(e.Repo), q.Encode())
}

// LayerURL returns the layer browser URL of tagName. Colons in the digest
// become dashes, matching the Docker Hub web routes. Path segments are
// escaped like those of the tags API.
func (e *Extractor) LayerURL(tagName, digest string) string {
	return fmt.Sprintf("%s/layers/%s/%s/%s/images/%s",
		strings.TrimSuffix(e.BaseURL, "/"),
		integrations.URLEncode(e.Namespace), integrations.URLEncode(e.Repo), integrations.URLEncode(tagName),
		integrations.URLEncode(strings.ReplaceAll(digest, ":", "-")))
}

func (e *Extractor) LatestVersion(ctx context.Context) (*version.Record, error) {
	return extract.Latest(ctx, e, e.Prefix)
}
