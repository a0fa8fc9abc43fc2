// Package pagerender centralizes page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/httpx"
	webtemplates "github.com/kalakshetraodisha/website/internal/services/web/templates"
)

// Page describes a full page response.
type Page struct {
	Context    *webtemplates.PageContext
	StatusCode int
	Body       templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders the body inside the site layout. The document is
// buffered so a rendering failure still yields a clean 500 response.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	pageContext := page.Context
	if pageContext == nil {
		pageContext = &webtemplates.PageContext{}
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(pageContext).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, _ = w.Write(buf.Bytes())
	return nil
}

// MustWritePage writes page and falls back to a plain 500 when rendering
// fails.
func MustWritePage(w http.ResponseWriter, r *http.Request, page Page) {
	if err := WritePage(w, r, page); err != nil {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		log.Printf("page render failed path=%s err=%v", path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
