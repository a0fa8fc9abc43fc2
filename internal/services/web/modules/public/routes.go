package public

import (
	"net/http"

	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.LegacyHome, h.handleLegacyHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Robots, h.handleRobots)
	mux.HandleFunc(http.MethodGet+" "+routepath.Sitemap, h.handleSitemap)
	mux.HandleFunc(http.MethodGet+" "+routepath.Offline, h.handleOffline)

	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePattern, h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePattern+"/{$}", h.handleHome)
	handlePage(mux, routepath.About, h.handleAbout)
	handlePage(mux, routepath.Programs, h.handlePrograms)
	handlePage(mux, routepath.ProgramsPrefix+"{"+routepath.ProgramSlugParam+"}", h.handleProgram)
	handlePage(mux, routepath.Gallery, h.handleGallery)
	handlePage(mux, routepath.Leadership, h.handleLeadership)
	handlePage(mux, routepath.Press, h.handlePress)
	handlePage(mux, routepath.Events, h.handleEvents)
	handlePage(mux, routepath.Contact, h.handleContact)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleRestPattern, h.handleUnmatched)
}

// handlePage registers a localized page with and without a trailing slash.
func handlePage(mux *http.ServeMux, path string, handler http.HandlerFunc) {
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePattern+path, handler)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePattern+path+"/{$}", handler)
}
