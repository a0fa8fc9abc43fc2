// Package public serves the localized content pages, the locale redirects
// and the search engine files.
package public

import (
	"errors"
	"net/http"

	"github.com/kalakshetraodisha/website/internal/platform/assets/imagecdn"
	module "github.com/kalakshetraodisha/website/internal/services/web/module"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/publichandler"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

// Module provides the public page routes.
type Module struct {
	content ContentService
	base    publichandler.Base
	assets  imagecdn.CDN
}

// Option configures a Module.
type Option func(*Module)

// WithAssets sets the CDN used to request sized gallery images.
func WithAssets(assets imagecdn.CDN) Option {
	return func(m *Module) { m.assets = assets }
}

// New returns a public module reading from service.
func New(service ContentService, base publichandler.Base, opts ...Option) Module {
	m := Module{content: service, base: base}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount returns the module handler mounted at the site root.
func (m Module) Mount() (module.Mount, error) {
	if m.content == nil {
		return module.Mount{}, errors.New("content service is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.content, m.base, m.assets))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
