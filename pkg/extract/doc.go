// Package extract defines the contract shared by every version source and
// the selection rule that reduces a source's candidates to one release.
//
// # Overview
//
// A source (a GitHub tag page, a release-notes page, the Docker Hub tags
// API) is scraped into a list of [Candidate] values: a raw version token and
// the URL it was found at. [Latest] then:
//
//  1. drops tokens that do not start with the configured prefix, or whose
//     remainder does not start with an ASCII digit
//  2. parses the survivors with [version.Parse]
//  3. returns the stable maximum via [version.Latest]
//
// A source with no surviving candidates yields a nil record and a nil error.
// Transport failures are returned unchanged so callers can match
// [integrations.ErrNotFound] and [integrations.ErrNetwork].
//
// # Variants
//
// Each subpackage implements one structural rule:
//
//   - [tagpage]: first link of each entry on a GitHub tag listing
//   - [releasenotes]: "Versie 1.2" / "Version 1.2" phrases in page text
//   - [heading]: headings anchored with a marker id such as "release-"
//   - [releaselist]: first link of each item in a release list
//   - [dockerhub]: tag names from the paginated Docker Hub API
//
// Every variant also exposes LatestVersion, which calls [Latest] with the
// variant's own prefix.
//
// [tagpage]: github.com/podiumd/versionwatch/pkg/extract/tagpage
// [releasenotes]: github.com/podiumd/versionwatch/pkg/extract/releasenotes
// [heading]: github.com/podiumd/versionwatch/pkg/extract/heading
// [releaselist]: github.com/podiumd/versionwatch/pkg/extract/releaselist
// [dockerhub]: github.com/podiumd/versionwatch/pkg/extract/dockerhub
// [integrations.ErrNotFound]: github.com/podiumd/versionwatch/pkg/integrations.ErrNotFound
// [integrations.ErrNetwork]: github.com/podiumd/versionwatch/pkg/integrations.ErrNetwork
package extract
