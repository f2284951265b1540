package errors

import (
	"strings"
	"testing"
)

func TestValidateRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"main", "main", false},
		{"release tag", "podiumd-4.1.0", false},
		{"branch with slash", "release/4.1", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"path traversal", "../secrets", true},
		{"double slash", "foo//bar", true},
		{"leading slash", "/main", true},
		{"trailing slash", "main/", true},
		{"space", "my branch", true},
		{"query", "main?x=1", true},
		{"fragment", "main#x", true},
		{"escape", "main%2F..", true},
		{"control char", "main\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRef) {
				t.Errorf("ValidateRef(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidRef)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://github.com/org/repo/tags", false},
		{"http://localhost:8080", false},
		{"", true},
		{"ftp://example.org", true},
		{"github.com/org/repo", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if err := ValidateURL(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
