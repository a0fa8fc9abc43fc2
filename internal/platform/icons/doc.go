// Package icons maps the icon names used by site content onto an inline
// Lucide SVG sprite.
//
// Content refers to icons by Lucide name ("map-pin", "book-open"). Unknown
// names resolve to Fallback so CMS entries with stray values still render.
package icons
