package public

import (
	"net/http"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/assets/imagecdn"
	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	sharedi18n "github.com/kalakshetraodisha/website/internal/services/shared/i18nhttp"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/httpx"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/publichandler"
	"github.com/kalakshetraodisha/website/internal/services/web/pwa"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
	webtemplates "github.com/kalakshetraodisha/website/internal/services/web/templates"
)

// homeGalleryPreview is the number of photographs shown on the home page.
const homeGalleryPreview = 8

type handlers struct {
	publichandler.Base
	content ContentService
	assets  imagecdn.CDN
}

func newHandlers(service ContentService, base publichandler.Base, assets imagecdn.CDN) handlers {
	return handlers{Base: base, content: service, assets: assets}
}

// handleRoot sends visitors to their preferred locale.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.redirectToPreferred(w, r, routepath.Home)
}

func (h handlers) handleLegacyHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Localized(platformi18n.Default().Code, routepath.Home), http.StatusMovedPermanently)
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.Home, "page.home.title", "page.home.description")
	images := h.content.Gallery(r.Context(), locale.Code).Images
	if len(images) > homeGalleryPreview {
		images = images[:homeGalleryPreview]
	}
	h.WritePage(w, r, page, "home", webtemplates.HomeView{
		Programs:      h.content.Programs(r.Context(), locale.Code),
		Gallery:       images,
		Stats:         page.Settings.Stats,
		Objectives:    page.Settings.Objectives,
		Notifications: page.Settings.Notifications,
	})
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.About, "page.about.title", "page.about.description")
	h.WritePage(w, r, page, "about", webtemplates.AboutView{
		Objectives: page.Settings.Objectives,
		Executives: h.content.Leadership(r.Context(), locale.Code).Executives,
	})
}

func (h handlers) handlePrograms(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.Programs, "page.programs.title", "page.programs.description")
	h.WritePage(w, r, page, "programs", webtemplates.ProgramsView{
		Programs: h.content.Programs(r.Context(), locale.Code),
	})
}

func (h handlers) handleProgram(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	slug := strings.TrimSpace(r.PathValue(routepath.ProgramSlugParam))
	program, found := h.content.Program(r.Context(), locale.Code, slug)
	if slug == "" || !found {
		h.WriteNotFound(w, r)
		return
	}
	page := h.Page(w, r, locale, routepath.Program(program.Slug), "page.programs.title", "page.programs.description")
	page.Title = program.Title
	if description := strings.TrimSpace(program.ShortDescription); description != "" {
		page.Description = description
	}
	h.WritePage(w, r, page, "program", webtemplates.ProgramView{Program: program})
}

func (h handlers) handleGallery(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.Gallery, "page.gallery.title", "page.gallery.description")
	h.WritePage(w, r, page, "gallery", buildGalleryView(page, h.content.Gallery(r.Context(), locale.Code), r.URL.Query(), h.assets))
}

func (h handlers) handleLeadership(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.Leadership, "page.leadership.title", "page.leadership.description")
	h.WritePage(w, r, page, "leadership", webtemplates.LeadershipView{
		Leadership: h.content.Leadership(r.Context(), locale.Code),
	})
}

func (h handlers) handlePress(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.Press, "page.press.title", "page.press.description")
	h.WritePage(w, r, page, "press", webtemplates.PressView{
		Press:  h.content.Press(r.Context(), locale.Code),
		Awards: h.content.Awards(r.Context(), locale.Code),
	})
}

func (h handlers) handleEvents(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.Events, "page.events.title", "page.events.description")
	h.WritePage(w, r, page, "events", webtemplates.EventsView{
		Events: h.content.Events(r.Context(), locale.Code),
	})
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(w, r)
	if !ok {
		return
	}
	page := h.Page(w, r, locale, routepath.Contact, "page.contact.title", "page.contact.description")
	h.WritePage(w, r, page, "contact", webtemplates.ContactView{
		Action: routepath.Localized(locale.Code, routepath.Contact),
	})
}

// handleOffline serves the page the service worker falls back to. It is not
// localized by path, so the visitor's preference picks the language.
func (h handlers) handleOffline(w http.ResponseWriter, r *http.Request) {
	tag, _ := sharedi18n.ResolveTag(r)
	page := h.Page(w, r, platformi18n.LocaleForTag(tag), routepath.Offline, "page.offline.title", "page.offline.description")
	page.Canonical = ""
	page.Alternates = nil
	page.InstallPrompt = false
	// The service worker only serves this page without a network.
	publichandler.SetConnectivity(page, pwa.NewConnectivity(false))
	h.WritePage(w, r, page, "offline", nil)
}

// handleUnmatched covers every path the page routes miss.
func (h handlers) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.locale(w, r); !ok {
		return
	}
	h.WriteNotFound(w, r)
}

// locale resolves the {locale} segment. Requests whose first segment is not
// a published locale are redirected when they name a page and answered with
// a 404 otherwise; in both cases the response is already written.
func (h handlers) locale(w http.ResponseWriter, r *http.Request) (platformi18n.Locale, bool) {
	locale, ok := publichandler.ResolveLocale(r)
	if ok {
		rememberLocale(w, r, locale)
		return locale, true
	}
	if path, known := unprefixedPage(r.URL.Path); known {
		h.redirectToPreferred(w, r, path)
		return platformi18n.Locale{}, false
	}
	h.WriteNotFound(w, r)
	return platformi18n.Locale{}, false
}

// redirectToPreferred redirects to path under the locale the visitor prefers.
func (h handlers) redirectToPreferred(w http.ResponseWriter, r *http.Request, path string) {
	tag, persist := sharedi18n.ResolveTag(r)
	if persist {
		sharedi18n.SetLanguageCookie(w, tag)
	}
	target := routepath.Localized(platformi18n.LocaleForTag(tag).Code, path)
	query := r.URL.Query()
	query.Del(sharedi18n.LangParam)
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	httpx.WriteRedirect(w, r, target)
}

// rememberLocale stores the locale of a visited page as the preference used
// by unprefixed links.
func rememberLocale(w http.ResponseWriter, r *http.Request, locale platformi18n.Locale) {
	if cookie, err := r.Cookie(sharedi18n.LangCookieName); err == nil && cookie.Value == locale.Code {
		return
	}
	sharedi18n.SetLanguageCookie(w, locale.Tag)
}

// unprefixedPage reports whether path names a page without its locale
// segment, returning the normalized page path.
func unprefixedPage(path string) (string, bool) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	for _, page := range routepath.Pages {
		if page != routepath.Home && path == page {
			return path, true
		}
	}
	slug, found := strings.CutPrefix(path, routepath.ProgramsPrefix)
	if found && slug != "" && !strings.Contains(slug, "/") {
		return path, true
	}
	return "", false
}
