package common

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Must start with http:// or https:// and have a plausible domain.
var urlPattern = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.:]*[a-zA-Z0-9](/[^\s]*)?$`)

// SanitizeURL performs basic cleanup on a URL to handle common copy-paste
// issues: whitespace, trailing punctuation, markdown link syntax.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// Extract URL from markdown link format: [text](url) -> url
	markdownLink := regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	if matches := markdownLink.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// NormalizeURL sanitizes the input and prepends https:// when no scheme is
// given, then validates the result. It returns the normalized URL or an
// error describing why the input cannot be audited.
func NormalizeURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("empty URL")
	}

	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		cleaned = "https://" + cleaned
	}

	if strings.Contains(cleaned, " ") {
		return "", fmt.Errorf("URL contains spaces (encode them as %%20): %s", cleaned)
	}
	if !urlPattern.MatchString(cleaned) {
		return "", fmt.Errorf("malformed URL: %s", cleaned)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", cleaned, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL has no host: %s", cleaned)
	}
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return "", fmt.Errorf("URL host contains invalid characters: %s", cleaned)
	}

	return cleaned, nil
}

// RegistrableDomain returns a naive eTLD+1 for a hostname: the last two
// labels. Multi-part public suffixes (co.uk and friends) are folded to their
// suffix, which is acceptable for the internal/external link split.
func RegistrableDomain(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return host
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
