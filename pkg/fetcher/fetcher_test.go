package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchCapturesMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", got, DefaultUserAgent)
		}
		if !strings.Contains(r.Header.Get("Accept"), "text/html") {
			t.Errorf("Accept = %q, want text/html included", r.Header.Get("Accept"))
		}
		w.Header().Set("X-Frame-Options", "DENY")
		w.Write([]byte("<html><title>ok</title></html>"))
	}))
	defer srv.Close()

	f := New(5*time.Second, "")
	target, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}

	if target.URL != srv.URL {
		t.Errorf("URL = %q, want %q", target.URL, srv.URL)
	}
	if target.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", target.StatusCode)
	}
	if target.Header.Get("X-Frame-Options") != "DENY" {
		t.Errorf("missing response header, got %v", target.Header)
	}
	if !strings.Contains(string(target.Body), "<title>ok</title>") {
		t.Errorf("Body = %q", target.Body)
	}
	if target.Elapsed <= 0 {
		t.Errorf("Elapsed = %v, want positive", target.Elapsed)
	}
	if target.FetchedAt.IsZero() {
		t.Error("FetchedAt is zero")
	}
}

func TestFetchCustomUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "custom-bot/2.0" {
			t.Errorf("User-Agent = %q, want custom-bot/2.0", got)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := New(5*time.Second, "custom-bot/2.0")
	if _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
}

func TestFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>landed</html>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(5*time.Second, "")
	target, err := f.Fetch(context.Background(), srv.URL+"/start")
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}

	if target.URL != srv.URL+"/start" {
		t.Errorf("URL = %q, want the requested URL", target.URL)
	}
	if target.FinalURL != srv.URL+"/final" {
		t.Errorf("FinalURL = %q, want %q", target.FinalURL, srv.URL+"/final")
	}
}

func TestFetchErrorStatusWithBodyProceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<html><title>Not Found</title></html>"))
	}))
	defer srv.Close()

	f := New(5*time.Second, "")
	target, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if target.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", target.StatusCode)
	}
	if len(target.Body) == 0 {
		t.Error("Body is empty, want the error page")
	}
}

func TestFetchErrorStatusWithoutBodyFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := New(5*time.Second, "")
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("Fetch() succeeded, want error for empty error page")
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	f := New(2*time.Second, "")
	if _, err := f.Fetch(context.Background(), "http://127.0.0.1:1"); err == nil {
		t.Fatal("Fetch() succeeded against a closed port")
	}
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(5*time.Second, "")
	if _, err := f.Fetch(ctx, srv.URL); err == nil {
		t.Fatal("Fetch() succeeded with a canceled context")
	}
}
