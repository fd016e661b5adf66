package util

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"  https://example.com  ", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"/relative/path", false},
		{"https://", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateURL(tt.input); got != tt.want {
			t.Errorf("ValidateURL(%q) = %v; expected %v", tt.input, got, tt.want)
		}
	}
}

func TestValidShortCode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"abc123", true},
		{"a", true},
		{"with_under-score", true},
		{strings.Repeat("x", 128), true},
		{strings.Repeat("x", 129), false},
		{"", false},
		{"has space", false},
		{"slash/code", false},
		{"dot.code", false},
	}

	for _, tt := range tests {
		if got := ValidShortCode(tt.input); got != tt.want {
			t.Errorf("ValidShortCode(%q) = %v; expected %v", tt.input, got, tt.want)
		}
	}
}

func TestBase62Encode(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{10, "a"},
		{61, "Z"},
		{62, "10"},
		{12345, "3d7"},
		{3844, "100"},
	}

	for _, tt := range tests {
		if got := base62Encode(tt.input); got != tt.expected {
			t.Errorf("base62Encode(%d) = %s; expected %s", tt.input, got, tt.expected)
		}
	}
}

func TestRandomShortCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := RandomShortCode(7)
		if err != nil {
			t.Fatalf("RandomShortCode: %v", err)
		}
		if len(code) != 7 || !ValidShortCode(code) {
			t.Fatalf("unexpected code %q", code)
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Errorf("expected mostly distinct codes, got %d distinct of 50", len(seen))
	}
}

func TestNormalizeHost(t *testing.T) {
	tests := map[string]string{
		"Go.Example.com":      "go.example.com",
		"go.example.com:8443": "go.example.com",
		"localhost:8080":      "localhost",
		"example.com.":        "example.com",
		"":                    "",
	}
	for in, want := range tests {
		if got := NormalizeHost(in); got != want {
			t.Errorf("NormalizeHost(%q) = %q; expected %q", in, got, want)
		}
	}
}

func TestValidHostname(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"go.example.com", true},
		{"links.my-brand.io", true},
		{"localhost", false},
		{"-bad.example.com", false},
		{"under_score.example.com", false},
		{"example.c", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidHostname(tt.input); got != tt.want {
			t.Errorf("ValidHostname(%q) = %v; expected %v", tt.input, got, tt.want)
		}
	}
}
