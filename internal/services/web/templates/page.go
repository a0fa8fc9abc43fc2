package templates

import (
	"strconv"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/branding"
	"github.com/kalakshetraodisha/website/internal/services/web/content"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
	"github.com/kalakshetraodisha/website/internal/services/web/site"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	// Lang is the locale code of the page, such as "or".
	Lang      string
	OpenGraph string
	Loc       Localizer
	// Path is the locale-free page path; Query is the raw query string.
	Path          string
	Query         string
	Title         string
	Description   string
	Canonical     string
	Alternates    []site.Alternate
	Settings      content.Settings
	Notice        *Notice
	InstallPrompt bool
	Year          int
	// Client is the initial state of the page script's machines, plus the
	// transition table it follows as JSON.
	Client ClientState
}

// ClientState seeds the page script.
type ClientState struct {
	Header       string
	Install      string
	Connectivity string
	// Offline shows the connectivity indicator on first paint.
	Offline     bool
	Transitions string
}

// Notice is a one-time message shown above the page body.
type Notice struct {
	Kind    string
	Message string
}

// NavItem is one primary navigation link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

var navEntries = []struct {
	key  string
	path string
}{
	{key: "nav.home", path: routepath.Home},
	{key: "nav.about", path: routepath.About},
	{key: "nav.programs", path: routepath.Programs},
	{key: "nav.gallery", path: routepath.Gallery},
	{key: "nav.leadership", path: routepath.Leadership},
	{key: "nav.press", path: routepath.Press},
	{key: "nav.events", path: routepath.Events},
	{key: "nav.contact", path: routepath.Contact},
}

// T translates key in the page locale.
func (p *PageContext) T(key string, args ...any) string {
	return T(p.Loc, key, args...)
}

// Copyright returns the footer rights line. The year is formatted before
// translation so the printer does not group its digits.
func (p *PageContext) Copyright() string {
	return p.T("footer.rights", strconv.Itoa(p.Year))
}

// Href localizes a locale-free path.
func (p *PageContext) Href(path string) string {
	return routepath.Localized(p.Lang, path)
}

// ProgramHref returns the localized program detail path.
func (p *PageContext) ProgramHref(slug string) string {
	return routepath.LocalizedProgram(p.Lang, slug)
}

// FullTitle returns the document title with the organization suffix.
func (p *PageContext) FullTitle() string {
	return branding.PageTitle(p.Title)
}

// ThemeColor returns the browser chrome color.
func (p *PageContext) ThemeColor() string {
	return branding.ThemeColor
}

// Nav returns the primary navigation with the current section marked.
func (p *PageContext) Nav() []NavItem {
	items := make([]NavItem, 0, len(navEntries))
	for _, entry := range navEntries {
		items = append(items, NavItem{
			Label:  p.T(entry.key),
			Href:   p.Href(entry.path),
			Active: p.IsActive(entry.path),
		})
	}
	return items
}

// IsActive reports whether path is the current section. Program detail pages
// keep the programs section active.
func (p *PageContext) IsActive(path string) bool {
	current := strings.TrimSuffix(p.Path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return current == ""
	}
	return current == path || strings.HasPrefix(current, path+"/")
}

// Languages returns the language switcher entries.
func (p *PageContext) Languages() []LanguageOption {
	return LanguageOptions(*p)
}
