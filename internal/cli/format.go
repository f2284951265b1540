package cli

import (
	"slices"
	"strings"

	errs "github.com/podiumd/versionwatch/pkg/errors"
)

func checkFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return errs.New(errs.ErrCodeInvalidInput, "unknown format %q (want %s)", format, strings.Join(allowed, ", "))
}
