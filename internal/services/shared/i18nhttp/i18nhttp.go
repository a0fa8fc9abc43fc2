package i18nhttp

import (
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	_ "github.com/kalakshetraodisha/website/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "ks_lang"
)

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Code   string
	Label  string
	URL    string
	Active bool
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return platformi18n.SupportedTags()
}

// Default returns the default language tag.
func Default() language.Tag {
	return platformi18n.DefaultTag()
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the preferred language for a request that carries no
// locale path segment. The bool indicates whether the lang query param should
// be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    platformi18n.LocaleForTag(tag).Code,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}

// SplitLocalePath separates a leading locale segment from the rest of the
// path. "/or/gallery/" yields ("or", "/gallery/", true). Paths without a
// published locale segment report false.
func SplitLocalePath(path string) (platformi18n.Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	locale, ok := platformi18n.Lookup(segment)
	if !ok || locale.Code != segment {
		return platformi18n.Locale{}, path, false
	}
	return locale, "/" + rest, true
}

// LocalizedPath prefixes a locale-free path with the locale code.
func LocalizedPath(code string, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return "/" + code + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + code + path
}

// LanguageURL returns the current URL with its locale segment swapped.
func LanguageURL(path string, rawQuery string, code string) string {
	rest := path
	if _, stripped, ok := SplitLocalePath(path); ok {
		rest = stripped
	}
	target := LocalizedPath(code, rest)
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// BuildLanguageOptions returns supported language options with the active
// locale marked and switcher URLs computed from the current path.
func BuildLanguageOptions(activeCode string, path string, rawQuery string) []LanguageOption {
	locales := platformi18n.Locales()
	options := make([]LanguageOption, 0, len(locales))
	for _, locale := range locales {
		options = append(options, LanguageOption{
			Code:   locale.Code,
			Label:  locale.NativeName,
			URL:    LanguageURL(path, rawQuery, locale.Code),
			Active: locale.Code == activeCode,
		})
	}
	return options
}

// ActiveLanguageLabel returns the label for the active language selection.
func ActiveLanguageLabel(options []LanguageOption) string {
	for _, option := range options {
		if option.Active {
			return option.Label
		}
	}
	if len(options) == 0 {
		return ""
	}
	return options[0].Label
}
