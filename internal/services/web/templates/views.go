package templates

import (
	"github.com/kalakshetraodisha/website/internal/services/web/content"
	"github.com/kalakshetraodisha/website/internal/services/web/gallery"
)

// HomeView is the landing page body.
type HomeView struct {
	Programs      []content.Program
	Gallery       []gallery.Image
	Stats         []content.Counter
	Objectives    []content.Objective
	Notifications []string
}

// AboutView is the about page body.
type AboutView struct {
	Objectives []content.Objective
	Executives []content.Leader
}

// ProgramsView lists every program.
type ProgramsView struct {
	Programs []content.Program
}

// ProgramView is one program page.
type ProgramView struct {
	Program content.ProgramDetail
}

// GalleryFilter is one category button.
type GalleryFilter struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// GalleryTile is an image with the link that opens it in the viewer. Thumb
// is the viewer strip source; blank falls back to Image.Src.
type GalleryTile struct {
	Image  gallery.Image
	Thumb  string
	Href   string
	Active bool
}

// GalleryLayout is the masonry distribution for one column count.
type GalleryLayout struct {
	Columns int
	Cols    [][]GalleryTile
}

// GalleryViewer is the open lightbox. Blank previous or next links mean the
// viewer is at that end of the list.
type GalleryViewer struct {
	Image        gallery.Image
	Position     int
	Total        int
	CloseHref    string
	PreviousHref string
	NextHref     string
	Thumbnails   []GalleryTile
}

// GalleryView is the gallery page body.
type GalleryView struct {
	Filters       []GalleryFilter
	Layouts       []GalleryLayout
	Count         int
	CategoryLabel string
	Viewer        *GalleryViewer
}

// LeadershipView is the leadership page body.
type LeadershipView struct {
	Leadership content.Leadership
}

// PressView is the press page body.
type PressView struct {
	Press  content.Press
	Awards []content.Award
}

// EventsView is the events page body.
type EventsView struct {
	Events content.Events
}

// ContactForm echoes submitted values back into the form.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactView is the contact page body.
type ContactView struct {
	Action string
	Form   ContactForm
}
