// Package templates renders the site's pages.
//
// Page bodies are html/template definitions embedded from html/, exposed as
// templ components so handlers compose them with the layout the same way
// for every page.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/kalakshetraodisha/website/internal/platform/icons"
	"github.com/kalakshetraodisha/website/internal/services/web/content"
)

//go:embed html/*.html
var htmlFS embed.FS

var pages = template.Must(template.New("pages").Funcs(funcs).ParseFS(htmlFS, "html/*.html"))

var funcs = template.FuncMap{
	"icon":     iconHTML,
	"date":     content.FormatDate,
	"longDate": content.FormatLongDate,
	"tel":      telURL,
	"programCards": func(page *PageContext, programs []content.Program) programCardsData {
		return programCardsData{Page: page, Programs: programs}
	},
	"leaderCards": func(page *PageContext, leaders []content.Leader) leaderCardsData {
		return leaderCardsData{Page: page, Leaders: leaders}
	},
	"eventList": func(page *PageContext, events []content.Event) eventListData {
		return eventListData{Page: page, Events: events}
	},
}

type pageData struct {
	Page *PageContext
	View any
}

type programCardsData struct {
	Page     *PageContext
	Programs []content.Program
}

type leaderCardsData struct {
	Page    *PageContext
	Leaders []content.Leader
}

type eventListData struct {
	Page   *PageContext
	Events []content.Event
}

type layoutData struct {
	Page   *PageContext
	Body   template.HTML
	Sprite template.HTML
}

// Page returns the component rendering the named page body.
func Page(name string, page *PageContext, view any) templ.Component {
	tmpl := pages.Lookup(name)
	if tmpl == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %q is not defined", name)
		})
	}
	return templ.FromGoHTML(tmpl, pageData{Page: page, View: view})
}

// Layout wraps its children in the site shell.
func Layout(page *PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := templ.ToGoHTML(ctx, templ.GetChildren(ctx))
		if err != nil {
			return err
		}
		return pages.ExecuteTemplate(w, "layout", layoutData{
			Page:   page,
			Body:   body,
			Sprite: template.HTML(icons.LucideSprite()),
		})
	})
}

// Error returns the body of an error page.
func Error(page *PageContext, statusCode int) templ.Component {
	return Page("error", page, ErrorViewFor(statusCode))
}

func iconHTML(name string) template.HTML {
	return template.HTML(`<svg class="icon" aria-hidden="true" focusable="false"><use href="#` +
		template.HTMLEscapeString(icons.LucideSymbolID(name)) + `"></use></svg>`)
}

// telURL marks dial links as safe for href attributes, which html/template
// would otherwise filter. Anything that is not a tel: link becomes "#".
func telURL(href string) template.URL {
	href = strings.TrimSpace(href)
	if !strings.HasPrefix(href, "tel:") {
		return "#"
	}
	return template.URL(href)
}
