// Package version parses scraped version strings into comparable records.
//
// A [Record] keeps the raw token as it appeared upstream together with the
// URL it was found at, and the leading numeric components parsed from it.
// Only major, minor and patch take part in ordering; whatever follows is
// kept as a free-form qualifier.
//
// # Ordering
//
// [Compare] returns one of [Less], [Equal], [Greater] or [Incomparable].
// Two records with the same numeric tuple but different qualifiers are
// [Incomparable]: neither is newer than the other.
//
// [Latest] picks the maximum of a slice. The first record seen wins ties
// and incomparable pairs, so the result depends on input order when
// qualifiers differ. Upstream listings are usually newest-first, which is
// what makes this acceptable.
//
//	recs := []*version.Record{
//	    version.Parse("v1.0.0", "v", ""),
//	    version.Parse("v2.3.1", "v", ""),
//	    version.Parse("v2.3.0", "v", ""),
//	}
//	version.Latest(recs).Raw // "v2.3.1"
package version
