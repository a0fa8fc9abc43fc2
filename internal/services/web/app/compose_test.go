package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/kalakshetraodisha/website/internal/services/web/module"
)

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsAliasOwnedByAnotherModule(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "status", mount: module.Mount{Prefix: "/up", Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "shell", mount: module.Mount{Prefix: "/static/", Aliases: []string{"/up"}, Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate alias error")
	}
	if got := err.Error(); !strings.Contains(got, "shell") || !strings.Contains(got, "status") {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "static/"},
		{name: "contains surrounding whitespace", prefix: "/static/ "},
		{name: "lower case method", prefix: "post /en/contact"},
		{name: "method without path slash", prefix: "POST en/contact"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: statusHandler(http.StatusOK)}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsInvalidAlias(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "contact", mount: module.Mount{Prefix: "/api/contact", Aliases: []string{"en/contact"}, Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "invalid alias") {
		t.Fatalf("Compose() error = %v, want invalid alias", err)
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{nil}})
	if err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMountErrorAndNilHandler(t *testing.T) {
	t.Parallel()

	tests := []module.Module{
		stubModule{id: "broken", err: errors.New("boom")},
		stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}},
	}
	for _, feature := range tests {
		if _, err := Compose(ComposeInput{Modules: []module.Module{feature}}); err == nil {
			t.Fatalf("module %q: expected compose error", feature.ID())
		}
	}
}

func TestComposeRoutesSpecificPatternsBeforeRootFallback(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "public", mount: module.Mount{Prefix: "/", Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "contact", mount: module.Mount{
				Prefix:  "/api/contact",
				Aliases: []string{"POST /en/contact"},
				Handler: statusHandler(http.StatusAccepted),
			}},
			stubModule{id: "shell", mount: module.Mount{Prefix: "/static/", Handler: statusHandler(http.StatusNoContent)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/en/contact", want: http.StatusOK},
		{method: http.MethodPost, path: "/en/contact", want: http.StatusAccepted},
		{method: http.MethodPost, path: "/api/contact", want: http.StatusAccepted},
		{method: http.MethodGet, path: "/static/site.css", want: http.StatusNoContent},
		{method: http.MethodGet, path: "/en/gallery", want: http.StatusOK},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}
