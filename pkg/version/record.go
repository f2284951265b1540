package version

import (
	"fmt"
	"strconv"
	"strings"
)

// numericParts is the number of leading segments parsed as integers.
const numericParts = 3

// Record is a single version token scraped from an upstream source.
//
// Records are immutable values; construct them with [Parse].
type Record struct {
	Raw       string `json:"raw"`        // Token as scraped, prefix included (e.g. "v1.2.3")
	SourceURL string `json:"source_url"` // Absolute URL the token was found at (may be empty)
	Major     int    `json:"major"`
	Minor     int    `json:"minor"`
	Patch     int    `json:"patch"`
	Qualifier string `json:"qualifier,omitempty"` // Remainder after the numeric prefix (e.g. ".0-alpine")
}

// Parse builds a Record from a raw token.
//
// prefix is removed from the front of raw before parsing when present. The
// remainder is split on "." and at most three leading all-digit segments are
// read as major, minor and patch; parsing stops at the first segment that is
// not a plain number. Missing components default to 0. The qualifier is the
// remainder with the consumed segments and the dots between them removed:
//
//	Parse("1.2.3", "", "")               // 1.2.3, qualifier ""
//	Parse("1.2.3.4", "", "")             // 1.2.3, qualifier ".4"
//	Parse("24.0-alpine", "", "")         // 24.0.0, qualifier ".0-alpine"
//	Parse("clamav-1.4.2", "clamav-", "") // 1.4.2, qualifier ""
func Parse(raw, prefix, sourceURL string) *Record {
	r := &Record{Raw: raw, SourceURL: sourceURL}
	rest := strings.TrimPrefix(raw, prefix)

	segments := strings.SplitN(rest, ".", numericParts+1)
	var nums [numericParts]int
	consumed := 0
	for consumed < len(segments) && consumed < numericParts {
		n, ok := parseSegment(segments[consumed])
		if !ok {
			break
		}
		nums[consumed] = n
		consumed++
	}

	r.Major, r.Minor, r.Patch = nums[0], nums[1], nums[2]
	r.Qualifier = rest[len(strings.Join(segments[:consumed], ".")):]
	return r
}

func parseSegment(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Equal reports whether r and other were scraped as the same token from the
// same URL. Numeric equality is not enough; use [Compare] for ordering.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Raw == other.Raw && r.SourceURL == other.SourceURL
}

// String returns the raw token.
func (r *Record) String() string {
	if r == nil {
		return ""
	}
	return r.Raw
}

// Numeric returns the normalized "major.minor.patch" form.
func (r *Record) Numeric() string {
	return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
}
