// Package contact accepts messages from the contact form, both as the JSON
// endpoint used by scripts and as the plain HTML form post.
package contact

import (
	"log"
	"net/http"

	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	module "github.com/kalakshetraodisha/website/internal/services/web/module"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/flash"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

// Module provides the contact submission routes.
type Module struct {
	inbox    Inbox
	recorder Recorder
	limiter  *Limiter
	policy   requestmeta.SchemePolicy
	logger   *log.Logger
}

// Option configures a Module.
type Option func(*Module)

// WithInbox persists accepted submissions.
func WithInbox(inbox Inbox) Option {
	return func(m *Module) { m.inbox = inbox }
}

// WithRecorder counts submission outcomes.
func WithRecorder(recorder Recorder) Option {
	return func(m *Module) { m.recorder = recorder }
}

// WithLimiter replaces the default per-client limiter.
func WithLimiter(limiter *Limiter) Option {
	return func(m *Module) { m.limiter = limiter }
}

// WithSchemePolicy sets how same-origin checks and cookies resolve the
// request scheme.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.policy = policy }
}

// WithLogger sets the submission log destination.
func WithLogger(logger *log.Logger) Option {
	return func(m *Module) { m.logger = logger }
}

// New returns a contact module.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	if m.limiter == nil {
		m.limiter = NewLimiter(DefaultRate, DefaultBurst)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount returns the JSON endpoint plus the localized form targets.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.inbox, m.recorder, m.logger), m.limiter, flash.Store{Policy: m.policy})
	registerRoutes(mux, h, m.policy)

	aliases := make([]string, 0, len(platformi18n.Locales()))
	for _, locale := range platformi18n.Locales() {
		aliases = append(aliases, http.MethodPost+" "+routepath.Localized(locale.Code, routepath.Contact))
	}
	return module.Mount{Prefix: routepath.APIContact, Aliases: aliases, Handler: mux}, nil
}
