package app

import (
	"net/http"

	"github.com/kalakshetraodisha/website/internal/services/web/platform/httpx"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/observability"
)

// BuildRootHandler composes the module mux and wraps it in the site-wide
// middleware: request id, panic recovery, request logging, security
// headers and metrics, outermost first.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	root, err := Compose(ComposeInput{Modules: cfg.Modules})
	if err != nil {
		return nil, err
	}
	middleware := []httpx.Middleware{
		httpx.RequestID(),
		httpx.RecoverPanic(),
		observability.RequestLogger(cfg.Logger),
		httpx.SecurityHeaders(),
	}
	if cfg.Metrics != nil {
		middleware = append(middleware, cfg.Metrics.Middleware())
	}
	return httpx.Chain(root, middleware...), nil
}
