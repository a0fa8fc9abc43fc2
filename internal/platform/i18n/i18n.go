// Package i18n defines the locales the site is published in.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale describes one published language.
type Locale struct {
	// Code is the URL path segment and catalog directory name.
	Code string
	Tag  language.Tag
	// NativeName is shown in the language switcher.
	NativeName string
	// OpenGraph is the og:locale value.
	OpenGraph string
}

var (
	english = Locale{Code: "en", Tag: language.English, NativeName: "English", OpenGraph: "en_IN"}
	odia    = Locale{Code: "or", Tag: language.MustParse("or"), NativeName: "ଓଡ଼ିଆ", OpenGraph: "or_IN"}

	supported = []Locale{english, odia}
	matcher   = language.NewMatcher([]language.Tag{english.Tag, odia.Tag})
)

// Locales returns the published locales with the default first.
func Locales() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default locale.
func Default() Locale {
	return english
}

// SupportedTags returns the language tags of the published locales.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		tags = append(tags, locale.Tag)
	}
	return tags
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return english.Tag
}

// Lookup returns the locale for an exact path code such as "or".
func Lookup(code string) (Locale, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, locale := range supported {
		if locale.Code == code {
			return locale, true
		}
	}
	return Locale{}, false
}

// ParseTag parses a BCP 47 value and reports whether its base language is
// published. Regional variants such as en-US or or-IN resolve to their base.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return language.Und, false
	}
	locale, ok := Lookup(base.String())
	if !ok {
		return language.Und, false
	}
	return locale.Tag, true
}

// MatchTags picks the best published tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index].Tag
}

// LocaleForTag maps a tag onto its published locale, falling back to the
// default.
func LocaleForTag(tag language.Tag) Locale {
	base, _ := tag.Base()
	if locale, ok := Lookup(base.String()); ok {
		return locale
	}
	return Default()
}
