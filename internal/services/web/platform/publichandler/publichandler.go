// Package publichandler provides a shared base for public web module handlers.
// It centralizes locale resolution, page context assembly, error handling and
// page rendering that would otherwise be duplicated across modules.
package publichandler

import (
	"context"
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	sharedi18n "github.com/kalakshetraodisha/website/internal/services/shared/i18nhttp"
	"github.com/kalakshetraodisha/website/internal/services/web/content"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/flash"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/pagerender"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/weberror"
	"github.com/kalakshetraodisha/website/internal/services/web/pwa"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
	"github.com/kalakshetraodisha/website/internal/services/web/site"
	webtemplates "github.com/kalakshetraodisha/website/internal/services/web/templates"
)

// SettingsSource provides the site-wide content shown in the page chrome.
type SettingsSource interface {
	Settings(ctx context.Context, locale string) content.Settings
}

// Base provides shared page rendering for public modules. Embed this in
// handler structs to get Page, WritePage, WriteNotFound and WriteError.
type Base struct {
	settings SettingsSource
	site     site.Config
	flash    flash.Store
	prompts  pwa.DismissalStore
	now      func() time.Time
}

// Option configures a Base.
type Option func(*Base)

// WithSettings attaches the site settings source used for the page chrome.
func WithSettings(source SettingsSource) Option {
	return func(b *Base) { b.settings = source }
}

// WithSite attaches the public-site configuration used for canonical links.
func WithSite(cfg site.Config) Option {
	return func(b *Base) { b.site = cfg }
}

// WithSchemePolicy sets how cookie Secure flags resolve the request scheme.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) {
		b.flash = flash.Store{Policy: policy}
		b.prompts = pwa.DismissalStore{Policy: policy}
	}
}

// WithClock overrides the clock used for the copyright year and the install
// prompt suppression window.
func WithClock(now func() time.Time) Option {
	return func(b *Base) { b.now = now }
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	b := Base{site: site.New("")}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Site returns the public-site configuration.
func (b Base) Site() site.Config {
	return b.site
}

// Flash returns the flash notice store.
func (b Base) Flash() flash.Store {
	return b.flash
}

// Now returns the current time from the configured clock.
func (b Base) Now() time.Time {
	if b.now == nil {
		return time.Now()
	}
	return b.now()
}

// ResolveLocale returns the locale of a localized route. The {locale} path
// value wins; otherwise the first path segment is consulted.
func ResolveLocale(r *http.Request) (platformi18n.Locale, bool) {
	if r == nil {
		return platformi18n.Locale{}, false
	}
	if value := r.PathValue(routepath.LocaleParam); value != "" {
		locale, ok := platformi18n.Lookup(value)
		return locale, ok && locale.Code == value
	}
	if r.URL == nil {
		return platformi18n.Locale{}, false
	}
	locale, _, ok := sharedi18n.SplitLocalePath(r.URL.Path)
	return locale, ok
}

// LocaleOrDefault returns the request locale or the default locale.
func LocaleOrDefault(r *http.Request) platformi18n.Locale {
	if locale, ok := ResolveLocale(r); ok {
		return locale
	}
	return platformi18n.Default()
}

// Page assembles the page context for a locale-free path. Title and
// description are catalog keys. Reading the context consumes any pending
// flash notice.
func (b Base) Page(w http.ResponseWriter, r *http.Request, locale platformi18n.Locale, path string, titleKey string, descriptionKey string) *webtemplates.PageContext {
	loc := sharedi18n.Printer(locale.Tag)
	page := &webtemplates.PageContext{
		Lang:        locale.Code,
		OpenGraph:   locale.OpenGraph,
		Loc:         loc,
		Path:        path,
		Title:       webtemplates.T(loc, titleKey),
		Description: webtemplates.T(loc, descriptionKey),
		Canonical:   b.site.Canonical(locale.Code, path),
		Alternates:  b.site.Alternates(path),
		Year:        b.Now().Year(),
	}
	if r != nil && r.URL != nil {
		page.Query = r.URL.RawQuery
	}
	if b.settings != nil {
		page.Settings = b.settings.Settings(requestContext(r), locale.Code)
	}
	if notice, ok := b.flash.ReadAndClear(w, r); ok {
		message := strings.TrimSpace(loc.Sprintf(notice.Key))
		if message == "" {
			message = notice.Key
		}
		page.Notice = &webtemplates.Notice{Kind: string(notice.Kind), Message: message}
	}
	if r != nil {
		prompt := b.prompts.Prompt(r, b.Now())
		page.InstallPrompt = prompt.Renderable()
		page.Client.Install = prompt.State().String()
	}
	page.Client.Header = (&pwa.HeaderStyle{}).State().String()
	page.Client.Transitions = pwa.ClientTableJSON()
	SetConnectivity(page, pwa.NewConnectivity(true))
	return page
}

// SetConnectivity seeds the offline indicator from c.
func SetConnectivity(page *webtemplates.PageContext, c *pwa.Connectivity) {
	page.Client.Connectivity = c.Status()
	page.Client.Offline = c.ShowIndicator()
}

// WritePage renders the named page template with view inside the layout.
func (Base) WritePage(w http.ResponseWriter, r *http.Request, page *webtemplates.PageContext, name string, view any) {
	pagerender.MustWritePage(w, r, pagerender.Page{
		Context: page,
		Body:    webtemplates.Page(name, page, view),
	})
}

// WriteNotFound renders a localized 404 page in the request locale.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	path := "/"
	if r != nil && r.URL != nil {
		path = r.URL.Path
		if _, rest, ok := sharedi18n.SplitLocalePath(path); ok {
			path = rest
		}
	}
	page := b.Page(w, r, LocaleOrDefault(r), path, "errors.not_found.title", "errors.not_found.body")
	weberror.WriteAppError(w, r, http.StatusNotFound, page)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	page := b.Page(w, r, LocaleOrDefault(r), "/", "errors.generic.title", "errors.generic.body")
	weberror.WriteModuleError(w, r, err, page)
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
