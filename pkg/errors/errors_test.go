package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "unknown source",
			err:  New(ErrCodeSourceNotFound, "unknown source: %s", "keycloakx"),
			want: "SOURCE_NOT_FOUND: unknown source: keycloakx",
		},
		{
			name: "catalog problem",
			err:  New(ErrCodeInvalidConfig, "source %q: locator is required", "ClamAV"),
			want: `INVALID_CONFIG: source "ClamAV": locator is required`,
		},
		{
			name: "wrapped manifest parse failure",
			err:  Wrap(ErrCodeInvalidManifest, errors.New("unexpected key"), "parse %s", "values.yaml"),
			want: "INVALID_MANIFEST: parse values.yaml: unexpected key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	notFound := errors.New("resource not found")
	err := Wrap(ErrCodeNotFound, fmt.Errorf("GET /podiumd-9.9.9/Chart.yaml: %w", notFound), "fetch chart")

	if !errors.Is(err, notFound) {
		t.Error("errors.Is should see the sentinel through Wrap")
	}
	if errors.Unwrap(err) != err.Cause {
		t.Error("Unwrap() should return Cause")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidRef, "ref cannot be empty"), ErrCodeInvalidRef, true},
		{"other code", New(ErrCodeInvalidRef, "ref cannot be empty"), ErrCodeInvalidInput, false},
		{"outer code of nested error", Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInvalidConfig, true},
		{"through fmt wrapping", fmt.Errorf("ClamAV: %w", New(ErrCodeNetwork, "status 503")), ErrCodeNetwork, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The HTTP API reports errors as {error: UserMessage(err), code: GetCode(err)}.
func TestUserMessageAndCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantCode Code
	}{
		{
			name:     "unknown source",
			err:      New(ErrCodeSourceNotFound, "unknown source: %s", "nope"),
			wantMsg:  "unknown source: nope",
			wantCode: ErrCodeSourceNotFound,
		},
		{
			name:     "unsafe ref",
			err:      ValidateRef("../etc"),
			wantMsg:  `ref contains invalid characters: ".."`,
			wantCode: ErrCodeInvalidRef,
		},
		{
			name:     "wrapped config error drops cause",
			err:      Wrap(ErrCodeInvalidConfig, errors.New("toml: line 3"), "parse sources.toml"),
			wantMsg:  "parse sources.toml",
			wantCode: ErrCodeInvalidConfig,
		},
		{
			name:     "coded error behind fmt wrapping",
			err:      fmt.Errorf("Keycloak: %w", New(ErrCodeInvalidManifest, "missing version")),
			wantMsg:  "missing version",
			wantCode: ErrCodeInvalidManifest,
		},
		{
			name:     "plain error",
			err:      errors.New("connection refused"),
			wantMsg:  "connection refused",
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.wantMsg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMsg)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}

	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
}
