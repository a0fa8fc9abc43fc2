package public

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	ChangeFreq string        `xml:"changefreq,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

func (h handlers) handleRobots(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: " + routepath.APIPrefix + "\n")
	b.WriteString("Disallow: " + routepath.PWAPrefix + "\n")
	fmt.Fprintf(&b, "\nSitemap: %s\n", h.Site().URL(routepath.Sitemap))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(b.String()))
}

func (h handlers) handleSitemap(w http.ResponseWriter, r *http.Request) {
	set := sitemapURLSet{XMLNS: sitemapNamespace, XHTML: "http://www.w3.org/1999/xhtml"}
	paths := append([]string(nil), routepath.Pages...)
	for _, slug := range h.content.ProgramSlugs(r.Context(), platformi18n.Default().Code) {
		paths = append(paths, routepath.Program(slug))
	}
	for _, locale := range platformi18n.Locales() {
		for _, path := range paths {
			set.URLs = append(set.URLs, h.sitemapEntry(locale.Code, path))
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}

func (h handlers) sitemapEntry(locale string, path string) sitemapURL {
	entry := sitemapURL{
		Loc:        h.Site().Canonical(locale, path),
		ChangeFreq: "weekly",
		Priority:   "0.8",
	}
	if path == routepath.Home {
		entry.ChangeFreq = "daily"
		entry.Priority = "1.0"
	}
	for _, alternate := range h.Site().Alternates(path) {
		entry.Alternates = append(entry.Alternates, sitemapLink{Rel: "alternate", Hreflang: alternate.Hreflang, Href: alternate.Href})
	}
	return entry
}
