package models

import (
	"net/http"
	"net/url"
	"time"
)

// Target is the fetched audit subject. It is immutable once the fetch
// completes; evaluators only read from it.
type Target struct {
	URL        string
	FinalURL   string
	StatusCode int
	Header     http.Header
	Body       []byte
	FetchedAt  time.Time
	Elapsed    time.Duration
}

// ParsedURL returns the final URL after redirects, falling back to the
// requested URL when the final one does not parse.
func (t *Target) ParsedURL() *url.URL {
	if u, err := url.Parse(t.FinalURL); err == nil && t.FinalURL != "" {
		return u
	}
	u, err := url.Parse(t.URL)
	if err != nil {
		return &url.URL{}
	}
	return u
}

// IsHTTPS reports whether the audited page was served over HTTPS.
func (t *Target) IsHTTPS() bool {
	return t.ParsedURL().Scheme == "https"
}
