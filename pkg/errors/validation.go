package errors

import (
	"strings"
	"unicode"
)

const maxRefLength = 255

// ValidateRef validates a git ref (branch or tag) before it is placed in a
// manifest URL. It rejects anything that could escape the chart path.
func ValidateRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidRef, "ref cannot be empty")
	}
	if len(ref) > maxRefLength {
		return New(ErrCodeInvalidRef, "ref too long (max %d characters)", maxRefLength)
	}

	for _, r := range ref {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRef, "ref contains invalid characters")
		}
	}

	for _, pattern := range []string{"..", "//", "\\", "?", "#", "%"} {
		if strings.Contains(ref, pattern) {
			return New(ErrCodeInvalidRef, "ref contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(ref, "/") || strings.HasSuffix(ref, "/") {
		return New(ErrCodeInvalidRef, "ref cannot start or end with /")
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
