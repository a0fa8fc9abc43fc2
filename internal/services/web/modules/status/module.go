// Package status exposes liveness, dependency health and metrics endpoints.
package status

import (
	"net/http"
	"time"

	module "github.com/kalakshetraodisha/website/internal/services/web/module"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

// Module provides the status routes.
type Module struct {
	cms     CMSProbe
	metrics http.Handler
	now     func() time.Time
}

// Option configures a Module.
type Option func(*Module)

// WithCMS reports the availability of the content service.
func WithCMS(probe CMSProbe) Option {
	return func(m *Module) { m.cms = probe }
}

// WithMetrics serves handler at /metrics.
func WithMetrics(handler http.Handler) Option {
	return func(m *Module) { m.metrics = handler }
}

// WithClock overrides the report timestamp clock.
func WithClock(now func() time.Time) Option {
	return func(m *Module) { m.now = now }
}

// New returns a status module.
func New(opts ...Option) Module {
	m := Module{now: time.Now}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "status" }

// Mount returns the liveness path plus the health and metrics aliases.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.cms, m.now), m.metrics))
	return module.Mount{
		Prefix:  routepath.Health,
		Aliases: []string{routepath.APIHealth, routepath.Metrics},
		Handler: mux,
	}, nil
}
