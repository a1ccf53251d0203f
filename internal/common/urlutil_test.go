package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean", in: "https://example.com", want: "https://example.com"},
		{name: "whitespace", in: "  https://example.com  ", want: "https://example.com"},
		{name: "trailing period", in: "https://example.com.", want: "https://example.com"},
		{name: "trailing comma", in: "https://example.com,", want: "https://example.com"},
		{name: "wrapping parens", in: "(https://example.com)", want: "https://example.com"},
		{name: "wrapping quotes", in: `"https://example.com"`, want: "https://example.com"},
		{name: "markdown link", in: "[Example](https://example.com/page)", want: "https://example.com/page"},
		{name: "angle brackets", in: "<https://example.com>", want: "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "already normalized", in: "https://example.com", want: "https://example.com"},
		{name: "adds https scheme", in: "example.com", want: "https://example.com"},
		{name: "keeps http scheme", in: "http://example.com", want: "http://example.com"},
		{name: "with path", in: "example.com/about", want: "https://example.com/about"},
		{name: "with port", in: "localhost:8080", want: "https://localhost:8080"},
		{name: "empty", in: "", wantErr: true},
		{name: "only punctuation", in: "...", wantErr: true},
		{name: "spaces in url", in: "https://example.com/my page", wantErr: true},
		{name: "no host", in: "https://", wantErr: true},
		{name: "braces in host", in: "https://exa{mple.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeURL(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeURL(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"example.com", "example.com"},
		{"www.example.com", "example.com"},
		{"a.b.c.example.com", "example.com"},
		{"EXAMPLE.COM", "example.com"},
		{"example.com.", "example.com"},
		{"localhost", "localhost"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := RegistrableDomain(tt.host); got != tt.want {
			t.Errorf("RegistrableDomain(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}
