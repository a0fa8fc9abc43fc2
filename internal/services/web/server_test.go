package web

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = "127.0.0.1:0"
	}
	cfg.Logger = log.New(io.Discard, "", 0)
	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(srv.Close)
	return srv
}

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for missing http address")
	}
	if _, err := NewServer(nil, Config{HTTPAddr: "127.0.0.1:0"}); err == nil {
		t.Fatal("expected error for nil context")
	}
}

func TestServerServesFallbackSiteWithoutCMS(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Config{}).Handler()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/en", wantStatus: http.StatusOK},
		{path: "/or/about", wantStatus: http.StatusOK},
		{path: "/en/gallery?category=events", wantStatus: http.StatusOK},
		{path: "/en/programs", wantStatus: http.StatusOK},
		{path: "/offline", wantStatus: http.StatusOK},
		{path: "/up", wantStatus: http.StatusOK},
		{path: "/api/health", wantStatus: http.StatusOK},
		{path: "/manifest.json", wantStatus: http.StatusOK},
		{path: "/sw.js", wantStatus: http.StatusOK},
		{path: "/static/site.css", wantStatus: http.StatusOK},
		{path: "/robots.txt", wantStatus: http.StatusOK},
		{path: "/sitemap.xml", wantStatus: http.StatusOK},
		{path: "/metrics", wantStatus: http.StatusOK},
		{path: "/", wantStatus: http.StatusFound},
		{path: "/xx/about", wantStatus: http.StatusNotFound},
		// Without ImagesDir nothing serves /images; NewServer logs a warning.
		{path: "/images/1.jpeg", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.wantStatus {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.wantStatus)
		}
		if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
			t.Fatalf("GET %s X-Content-Type-Options = %q, want nosniff", tc.path, got)
		}
	}
}

func TestServerRendersLocalizedDocument(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Config{SiteURL: "https://example.org"}).Handler()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/or/about", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	if got, _ := doc.Find("html").Attr("lang"); got != "or" {
		t.Fatalf("html lang = %q, want %q", got, "or")
	}
	if got, _ := doc.Find(`link[rel="canonical"]`).Attr("href"); got != "https://example.org/or/about" {
		t.Fatalf("canonical = %q, want %q", got, "https://example.org/or/about")
	}
}

func TestServerHealthReportsDisabledCMS(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Config{}).Handler()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var report map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if report["status"] != "ok" || report["cms"] != "disabled" {
		t.Fatalf("report = %v, want status ok and cms disabled", report)
	}
}

func TestServerPersistsContactSubmissions(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "inbox", "contact.db")
	srv := newTestServer(t, Config{ContactDBPath: dbPath})
	h := srv.Handler()

	body := `{"name":"Anita","email":"anita@example.org","subject":"Volunteering","message":"I would like to help at Village Day."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	submissions, err := srv.inbox.ListSubmissions(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListSubmissions() error = %v", err)
	}
	if len(submissions) != 1 {
		t.Fatalf("submissions = %d, want %d", len(submissions), 1)
	}
	if got := submissions[0].Subject; got != "Volunteering" {
		t.Fatalf("subject = %q, want %q", got, "Volunteering")
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rr.Body.String(), `kalakshetra_contact_submissions_total{outcome="accepted"} 1`) {
		t.Fatalf("metrics missing accepted contact counter:\n%s", rr.Body.String())
	}
}

func TestServerAcceptsContactWithoutInbox(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, Config{}).Handler()
	body := `{"name":"Anita","email":"anita@example.org","subject":"Volunteering","message":"I would like to help at Village Day."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestServerListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var srv *Server
	srv.Close()
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
