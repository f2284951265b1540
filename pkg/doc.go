// Package pkg holds the libraries behind versionwatch.
//
// # Overview
//
// versionwatch answers two questions for the PodiumD platform: what is the
// newest upstream release of each component, and which component versions
// changed between two PodiumD releases. The pkg directory is organized as:
//
//  1. [version] - Version records, parsing and ordering
//  2. [extract] - Scraping rules that turn upstream pages into versions
//  3. [manifest] - PodiumD release manifests built from the Helm chart
//  4. [compare] - Markdown diff tables of two manifests
//  5. [publiccode] - publiccode.yml maintenance
//  6. [integrations] - HTTP client with caching and retries
//  7. [cache], [httputil], [observability], [errors] - Shared infrastructure
//
// # Data Flow
//
//	Upstream page (GitHub tags, release notes, Docker Hub)
//	         ↓
//	    [extract] package (candidates → filter by prefix)
//	         ↓
//	    [version] package (parse → latest)
//	         ↓
//	    table / markdown / JSON
//
//	Chart.yaml + values.yaml at a git ref
//	         ↓
//	    [manifest] package (components by display name)
//	         ↓
//	    [compare] package (markdown diff)
//
// # Quick Start
//
//	opts := integrations.Options{HTTPClient: integrations.NewHTTPClient(integrations.DefaultTimeout)}
//	latest, err := tagpage.New(opts, "keycloak/keycloak", "").LatestVersion(ctx)
//
//	b := manifest.NewBuilder(opts)
//	old, _ := b.Build(ctx, manifest.Ref{Version: "4.1.0"})
//	updated, _ := b.Build(ctx, manifest.Ref{})
//	fmt.Print(compare.RenderDiffTable(old, updated, compare.Options{}))
//
// [version]: github.com/podiumd/versionwatch/pkg/version
// [extract]: github.com/podiumd/versionwatch/pkg/extract
// [manifest]: github.com/podiumd/versionwatch/pkg/manifest
// [compare]: github.com/podiumd/versionwatch/pkg/compare
// [publiccode]: github.com/podiumd/versionwatch/pkg/publiccode
// [integrations]: github.com/podiumd/versionwatch/pkg/integrations
// [cache]: github.com/podiumd/versionwatch/pkg/cache
// [httputil]: github.com/podiumd/versionwatch/pkg/httputil
// [observability]: github.com/podiumd/versionwatch/pkg/observability
// [errors]: github.com/podiumd/versionwatch/pkg/errors
package pkg
