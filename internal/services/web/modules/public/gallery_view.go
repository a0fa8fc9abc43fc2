package public

import (
	"net/url"

	"github.com/kalakshetraodisha/website/internal/platform/assets/imagecdn"
	"github.com/kalakshetraodisha/website/internal/services/web/content"
	"github.com/kalakshetraodisha/website/internal/services/web/gallery"
	webtemplates "github.com/kalakshetraodisha/website/internal/services/web/templates"
)

// Delivery widths requested from a resizing CDN.
const (
	tileWidthPX      = 640
	thumbnailWidthPX = 160
	viewerWidthPX    = 1600
)

// buildGalleryView restores the gallery state from the query and renders
// every transition the page offers as a link to the resulting state.
func buildGalleryView(page *webtemplates.PageContext, collection content.Gallery, query url.Values, assets imagecdn.CDN) webtemplates.GalleryView {
	c := gallery.FromQuery(collection.Images, collection.Categories, query)
	base := page.Href(page.Path)
	allLabel := page.T("gallery.filter.all")

	view := webtemplates.GalleryView{
		Count:         c.Len(),
		CategoryLabel: allLabel,
	}
	if c.Category() != gallery.AllCategories {
		view.CategoryLabel = c.CategoryLabel(c.Category())
	}

	filters := append([]gallery.Category{{ID: gallery.AllCategories, Label: allLabel}}, c.Categories()...)
	for _, category := range filters {
		view.Filters = append(view.Filters, webtemplates.GalleryFilter{
			ID:     category.ID,
			Label:  category.Label,
			Href:   c.After(func(next *gallery.Controller) { next.SelectCategory(category.ID) }).Href(base),
			Active: category.ID == c.Category(),
		})
	}

	current, open := c.Current()
	tiles := make([]webtemplates.GalleryTile, 0, c.Len())
	byID := make(map[string]webtemplates.GalleryTile, c.Len())
	for i, image := range c.Filtered() {
		image.Aspect = gallery.AspectFor(image, i)
		thumb := assets.Resize(image.Src, thumbnailWidthPX)
		image.Src = assets.Resize(image.Src, tileWidthPX)
		tile := webtemplates.GalleryTile{
			Image:  image,
			Thumb:  thumb,
			Href:   c.After(func(next *gallery.Controller) { next.OpenAt(i) }).Href(base),
			Active: open && image.ID == current.ID,
		}
		tiles = append(tiles, tile)
		byID[image.ID] = tile
	}
	for n := gallery.MinColumns; n <= gallery.MaxColumns; n++ {
		layout := webtemplates.GalleryLayout{Columns: n}
		for _, column := range c.Columns(n) {
			cells := make([]webtemplates.GalleryTile, 0, len(column))
			for _, image := range column {
				cells = append(cells, byID[image.ID])
			}
			layout.Cols = append(layout.Cols, cells)
		}
		view.Layouts = append(view.Layouts, layout)
	}

	if open {
		current.Src = assets.Resize(current.Src, viewerWidthPX)
		viewer := &webtemplates.GalleryViewer{
			Image:      current,
			Position:   c.State().Index + 1,
			Total:      c.Len(),
			CloseHref:  keyHref(c, gallery.KeyEscape, base),
			Thumbnails: tiles,
		}
		if c.HasPrevious() {
			viewer.PreviousHref = keyHref(c, gallery.KeyArrowLeft, base)
		}
		if c.HasNext() {
			viewer.NextHref = keyHref(c, gallery.KeyArrowRight, base)
		}
		view.Viewer = viewer
	}
	return view
}

// keyHref links to the state reached by pressing key in the viewer.
func keyHref(c *gallery.Controller, key string, base string) string {
	return c.After(func(next *gallery.Controller) { next.HandleKey(key) }).Href(base)
}
