// Package shell serves the installable app shell: the web app manifest,
// the service worker, bundled static assets, site photographs and the
// install prompt dismissal endpoint.
package shell

import (
	"io/fs"
	"net/http"
	"time"

	module "github.com/kalakshetraodisha/website/internal/services/web/module"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
	"github.com/kalakshetraodisha/website/internal/services/web/pwa"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
	"github.com/kalakshetraodisha/website/internal/services/web/static"
)

// Module provides the app shell routes.
type Module struct {
	assets    fs.FS
	imagesDir string
	policy    requestmeta.SchemePolicy
	now       func() time.Time
}

// Option configures a Module.
type Option func(*Module)

// WithAssets replaces the embedded static assets.
func WithAssets(assets fs.FS) Option {
	return func(m *Module) { m.assets = assets }
}

// WithImagesDir serves site photographs from dir under /images/. Without it
// those paths are not found.
func WithImagesDir(dir string) Option {
	return func(m *Module) { m.imagesDir = dir }
}

// WithSchemePolicy sets how same-origin checks and cookies resolve the
// request scheme.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.policy = policy }
}

// WithClock overrides the clock used to stamp prompt dismissals.
func WithClock(now func() time.Time) Option {
	return func(m *Module) { m.now = now }
}

// New returns a shell module.
func New(opts ...Option) Module {
	m := Module{assets: static.FS, now: time.Now}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "shell" }

// Mount returns the static prefix plus the root-level shell files.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.assets, m.imagesDir)
	registerRoutes(mux, newHandlers(svc, pwa.DismissalStore{Policy: m.policy}, m.now), m.policy)
	return module.Mount{
		Prefix: routepath.StaticPrefix,
		Aliases: []string{
			routepath.ImagesPrefix,
			routepath.Manifest,
			routepath.ServiceWorker,
			routepath.PWAPrefix,
		},
		Handler: mux,
	}, nil
}
