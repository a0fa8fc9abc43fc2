package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProofWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "untrusted forwarded proto is ignored",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://kalakshetraodisha.test/api/contact", nil)
				req.Host = "kalakshetraodisha.test"
				req.Header.Set("Origin", "http://kalakshetraodisha.test")
				req.Header.Set("X-Forwarded-Proto", "http")
				return req
			}(),
			policy: SchemePolicy{},
			want:   false,
		},
		{
			name: "trusted forwarded proto is used",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://kalakshetraodisha.test/api/contact", nil)
				req.Host = "kalakshetraodisha.test"
				req.Header.Set("Origin", "http://kalakshetraodisha.test")
				req.Header.Set("X-Forwarded-Proto", "http")
				return req
			}(),
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasSameOriginProofWithPolicy(tc.req, tc.policy); got != tc.want {
				t.Fatalf("HasSameOriginProofWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasSameOriginProofDefaultPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *http.Request
		want bool
	}{
		{
			name: "origin same host and scheme",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://kalakshetraodisha.test/en/contact/", nil)
				req.Host = "kalakshetraodisha.test"
				req.Header.Set("Origin", "https://kalakshetraodisha.test")
				return req
			}(),
			want: true,
		},
		{
			name: "referer same host and scheme",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://kalakshetraodisha.test/pwa/install-prompt/dismiss", nil)
				req.Host = "kalakshetraodisha.test"
				req.Header.Set("Referer", "https://kalakshetraodisha.test/en/gallery/")
				return req
			}(),
			want: true,
		},
		{
			name: "origin scheme mismatch",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://kalakshetraodisha.test/pwa/install-prompt/dismiss", nil)
				req.Host = "kalakshetraodisha.test"
				req.Header.Set("Origin", "http://kalakshetraodisha.test")
				return req
			}(),
			want: false,
		},
		{
			name: "origin missing non-default port",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://kalakshetraodisha.test:8443/pwa/install-prompt/dismiss", nil)
				req.Host = "kalakshetraodisha.test:8443"
				req.Header.Set("Origin", "https://kalakshetraodisha.test")
				return req
			}(),
			want: false,
		},
		{
			name: "missing origin and referer",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://kalakshetraodisha.test/pwa/install-prompt/dismiss", nil)
				req.Host = "kalakshetraodisha.test"
				return req
			}(),
			want: false,
		},
		{
			name: "nil request",
			req:  nil,
			want: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasSameOriginProofWithPolicy(tc.req, SchemePolicy{}); got != tc.want {
				t.Fatalf("HasSameOriginProofWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	if IsHTTPSWithPolicy(nil, SchemePolicy{}) {
		t.Fatalf("expected nil request to be non-https")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if IsHTTPSWithPolicy(req, SchemePolicy{}) {
		t.Fatalf("expected http URL to be non-https")
	}

	req = httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPSWithPolicy(req, SchemePolicy{}) {
		t.Fatalf("expected forwarded header to be ignored by default")
	}

	if got := IsHTTPSWithPolicy(req, SchemePolicy{TrustForwardedProto: true}); !got {
		t.Fatalf("IsHTTPSWithPolicy() = %v, want true", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPSWithPolicy(req, SchemePolicy{}) {
		t.Fatalf("expected TLS request to be https")
	}
}

func TestRequireSameOrigin(t *testing.T) {
	t.Parallel()

	h := RequireSameOrigin(SchemePolicy{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	get := httptest.NewRequest(http.MethodGet, "http://kalakshetraodisha.test/en/contact/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, get)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("GET status = %d, want %d", rr.Code, http.StatusNoContent)
	}

	post := httptest.NewRequest(http.MethodPost, "http://kalakshetraodisha.test/en/contact/", nil)
	post.Header.Set("Origin", "http://evil.test")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, post)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin POST status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	post = httptest.NewRequest(http.MethodPost, "http://kalakshetraodisha.test/en/contact/", nil)
	post.Header.Set("Origin", "http://kalakshetraodisha.test")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, post)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("same-origin POST status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}
