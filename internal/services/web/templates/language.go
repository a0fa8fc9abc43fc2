package templates

import (
	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	sharedi18n "github.com/kalakshetraodisha/website/internal/services/shared/i18nhttp"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption = sharedi18n.LanguageOption

// LanguageOptions returns the language switcher entries for a page. Each
// entry points at the same page in the other locale.
func LanguageOptions(page PageContext) []LanguageOption {
	locales := platformi18n.Locales()
	options := make([]LanguageOption, 0, len(locales))
	for _, locale := range locales {
		url := routepath.Localized(locale.Code, page.Path)
		if page.Query != "" {
			url += "?" + page.Query
		}
		options = append(options, LanguageOption{
			Code:   locale.Code,
			Label:  locale.NativeName,
			URL:    url,
			Active: locale.Code == page.Lang,
		})
	}
	return options
}

// ActiveLanguageLabel returns the label for the active language selection.
func ActiveLanguageLabel(page PageContext) string {
	return sharedi18n.ActiveLanguageLabel(LanguageOptions(page))
}
