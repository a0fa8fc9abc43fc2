// Package routepath stores canonical HTTP paths for web modules.
//
// Page paths are locale-free; Localized prefixes them with the locale
// segment every page is published under.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                 = "/"
	LegacyHome           = "/home"
	LocaleParam          = "locale"
	LocalePattern        = "/{" + LocaleParam + "}"
	LocaleRestPattern    = "/{" + LocaleParam + "}/{rest...}"
	Home                 = "/"
	About                = "/about"
	Programs             = "/programs"
	ProgramsPrefix       = "/programs/"
	ProgramSlugParam     = "slug"
	Gallery              = "/gallery"
	Leadership           = "/leadership"
	Press                = "/press"
	Events               = "/events"
	Contact              = "/contact"
	Offline              = "/offline"
	Health               = "/up"
	APIPrefix            = "/api/"
	APIHealth            = "/api/health"
	APIContact           = "/api/contact"
	Metrics              = "/metrics"
	Manifest             = "/manifest.json"
	ServiceWorker        = "/sw.js"
	Robots               = "/robots.txt"
	Sitemap              = "/sitemap.xml"
	StaticPrefix         = "/static/"
	ImagesPrefix         = "/images/"
	PWAPrefix            = "/pwa/"
	InstallPromptDismiss = "/pwa/install-prompt/dismiss"
)

// Pages lists the locale-free paths of every static page in navigation order.
var Pages = []string{Home, About, Programs, Gallery, Leadership, Press, Events, Contact}

// Localized prefixes a locale-free page path with the locale segment.
// The home page maps to "/{locale}" without a trailing slash.
func Localized(locale string, path string) string {
	locale = strings.TrimSpace(locale)
	path = strings.TrimSpace(path)
	if path == "" || path == Home {
		return "/" + locale
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + locale + path
}

// Program returns the locale-free program detail path.
func Program(slug string) string {
	return ProgramsPrefix + escapeSegment(slug)
}

// LocalizedProgram returns the program detail path for a locale.
func LocalizedProgram(locale string, slug string) string {
	return Localized(locale, Program(slug))
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
