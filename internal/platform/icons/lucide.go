package icons

import (
	"sort"
	"strings"
)

const lucideSymbolPrefix = "lucide-"

// Fallback is rendered for unknown icon names.
const Fallback = "target"

// Definition describes one icon in the sprite.
type Definition struct {
	Name        string
	Description string
}

var catalog = []Definition{
	{Name: "award", Description: "Awards, samman and scholarships."},
	{Name: "book-open", Description: "Documentation and archives."},
	{Name: "calendar", Description: "Events and dates."},
	{Name: "check-circle", Description: "Highlights and confirmations."},
	{Name: "chevron-left", Description: "Previous item."},
	{Name: "chevron-right", Description: "Next item."},
	{Name: "download", Description: "Downloadable documents."},
	{Name: "external-link", Description: "Links leaving the site."},
	{Name: "eye", Description: "Vision."},
	{Name: "facebook", Description: "Facebook page."},
	{Name: "file-text", Description: "Press releases."},
	{Name: "heart", Description: "Community and values."},
	{Name: "home", Description: "Villages and homes."},
	{Name: "instagram", Description: "Instagram profile."},
	{Name: "mail", Description: "Email addresses."},
	{Name: "map-pin", Description: "Places and villages."},
	{Name: "menu", Description: "Navigation menu toggle."},
	{Name: "party-popper", Description: "Festivals."},
	{Name: "phone", Description: "Phone numbers."},
	{Name: "target", Description: "Goals and generic programs."},
	{Name: "twitter", Description: "Twitter profile."},
	{Name: "users", Description: "Workshops and groups."},
	{Name: "wifi-off", Description: "Offline state."},
	{Name: "x", Description: "Close and dismiss."},
	{Name: "youtube", Description: "YouTube channel."},
}

// Catalog returns a copy of the icon definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Names returns the sorted icon names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, def := range catalog {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is part of the sprite.
func Known(name string) bool {
	name = strings.TrimSpace(name)
	for _, def := range catalog {
		if def.Name == name {
			return true
		}
	}
	return false
}

// LucideNameOrDefault provides a stable Lucide name even when name is unknown.
func LucideNameOrDefault(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if Known(name) {
		return name
	}
	return Fallback
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + LucideNameOrDefault(name)
}

// LucideSprite returns the SVG sprite markup for every cataloged icon.
func LucideSprite() string {
	return lucideSprite
}
