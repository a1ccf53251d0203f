// Package fetcher performs the single blocking page fetch of an audit run.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/siteroast/siteroast/models"
)

const DefaultUserAgent = "siteroast/1.0 (Website Auditor)"

type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New returns a Fetcher with the given timeout and User-Agent. A zero
// timeout means no limit; an empty userAgent falls back to the default.
func New(timeout time.Duration, userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch performs one GET request and captures the response metadata the
// evaluators need. Redirects are followed; the final URL is recorded. A
// non-success status with an empty body is an error, but when the server
// still returned a page the audit proceeds on it.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*models.Target, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	elapsed := time.Since(start)

	if resp.StatusCode >= 400 && len(body) == 0 {
		return nil, fmt.Errorf("server returned status %d with no body", resp.StatusCode)
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &models.Target{
		URL:        rawURL,
		FinalURL:   finalURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		FetchedAt:  start,
		Elapsed:    elapsed,
	}, nil
}
