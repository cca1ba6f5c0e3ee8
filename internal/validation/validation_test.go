package validation

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"sari@example.com", true},
		{"  sari@example.com  ", true},
		{"sari+tag@example.co.id", true},
		{"", false},
		{"   ", false},
		{"not-an-email", false},
		{"@example.com", false},
		{"sari@", false},
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Sari@Example.COM "); got != "sari@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"admin", true},
		{"user_42", true},
		{"ab", false},
		{"", false},
		{"has space", false},
		{"naughty;drop", false},
		{strings.Repeat("a", 33), false},
	}
	for _, tt := range tests {
		if got := ValidateUsername(tt.username); got != tt.want {
			t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
		}
	}
}

func TestTrimAndLimit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"trims whitespace", "  hello  ", 0, "hello"},
		{"caps length", "abcdef", 3, "abc"},
		{"zero max means unlimited", strings.Repeat("x", 500), 0, strings.Repeat("x", 500)},
		{"under limit untouched", "hi", 10, "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndLimit(tt.in, tt.max); got != tt.want {
				t.Errorf("TrimAndLimit(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestLimitsFromEnv(t *testing.T) {
	t.Setenv("MAX_COMMENT_LENGTH", "120")
	if got := MaxCommentLength(); got != 120 {
		t.Errorf("MaxCommentLength = %d, want 120", got)
	}

	t.Setenv("MAX_COMMENT_LENGTH", "not-a-number")
	if got := MaxCommentLength(); got != 2000 {
		t.Errorf("MaxCommentLength with bad env = %d, want default 2000", got)
	}

	t.Setenv("MAX_COMMENT_LENGTH", "-5")
	if got := MaxCommentLength(); got != 2000 {
		t.Errorf("MaxCommentLength with negative env = %d, want default 2000", got)
	}

	t.Setenv("MAX_COMMENT_LENGTH", "")
	if got := MaxCommentLength(); got != 2000 {
		t.Errorf("MaxCommentLength default = %d, want 2000", got)
	}
}
