// Package site holds the immutable public-site configuration shared by page
// handlers: the canonical origin and the alternate-language links derived
// from it.
package site

import (
	"strings"

	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

// DefaultURL is the production origin used for canonical links.
const DefaultURL = "https://kalakshetraodisha.com"

// Alternate is one hreflang link.
type Alternate struct {
	Hreflang string
	Href     string
}

// Config is the public-site configuration.
type Config struct {
	baseURL string
}

// New builds a Config for the public origin. Blank values use DefaultURL.
func New(baseURL string) Config {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return Config{baseURL: baseURL}
}

// BaseURL returns the origin without a trailing slash.
func (c Config) BaseURL() string {
	if c.baseURL == "" {
		return DefaultURL
	}
	return c.baseURL
}

// URL returns the absolute URL of an already localized path.
func (c Config) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL() + path
}

// Canonical returns the absolute URL of a locale-free page path in locale.
func (c Config) Canonical(locale string, path string) string {
	return c.URL(routepath.Localized(locale, path))
}

// Alternates returns one link per published locale plus x-default pointing
// at the default locale.
func (c Config) Alternates(path string) []Alternate {
	locales := platformi18n.Locales()
	out := make([]Alternate, 0, len(locales)+1)
	for _, locale := range locales {
		out = append(out, Alternate{Hreflang: locale.Code, Href: c.Canonical(locale.Code, path)})
	}
	out = append(out, Alternate{Hreflang: "x-default", Href: c.Canonical(platformi18n.Default().Code, path)})
	return out
}
