package cms

import (
	"context"
	"strings"
)

// Endpoints of the CMS content types.
const (
	EndpointPrograms     = "programs"
	EndpointGalleryItems = "gallery-items"
	EndpointLeaders      = "leaders"
	EndpointPressItems   = "press-items"
	EndpointAwards       = "awards"
	EndpointEvents       = "events"
	EndpointSiteSetting  = "site-setting"
)

// EventScope selects events by their upcoming flag.
type EventScope int

const (
	AllEvents EventScope = iota
	UpcomingEvents
	PastEvents
)

// Programs lists programs in display order.
func (c *Client) Programs(ctx context.Context, locale string) (Collection[Program], bool) {
	return FetchJSON[Collection[Program]](ctx, c, EndpointPrograms, Options{
		Locale: locale,
		Sort:   []string{"order:asc"},
	})
}

// ProgramBySlug returns the first program with slug.
func (c *Client) ProgramBySlug(ctx context.Context, slug string, locale string) (Entry[Program], bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Entry[Program]{}, false
	}
	list, ok := FetchJSON[Collection[Program]](ctx, c, EndpointPrograms, Options{
		Locale:   locale,
		Filters:  []Filter{Eq("slug", slug)},
		Populate: Fields{"image"},
	})
	if !ok || len(list.Data) == 0 {
		return Entry[Program]{}, false
	}
	return list.Data[0], true
}

// GalleryItems lists gallery items newest first, optionally in one category.
func (c *Client) GalleryItems(ctx context.Context, locale string, category string) (Collection[GalleryItem], bool) {
	return FetchJSON[Collection[GalleryItem]](ctx, c, EndpointGalleryItems, Options{
		Locale:  locale,
		Filters: optionalFilter("category", category),
		Sort:    []string{"date:desc"},
	})
}

// Leaders lists leaders in display order, optionally in one category.
func (c *Client) Leaders(ctx context.Context, locale string, category string) (Collection[Leader], bool) {
	return FetchJSON[Collection[Leader]](ctx, c, EndpointLeaders, Options{
		Locale:  locale,
		Filters: optionalFilter("category", category),
		Sort:    []string{"order:asc"},
	})
}

// PressItems lists press items newest first, optionally of one type.
func (c *Client) PressItems(ctx context.Context, locale string, itemType string) (Collection[PressItem], bool) {
	return FetchJSON[Collection[PressItem]](ctx, c, EndpointPressItems, Options{
		Locale:  locale,
		Filters: optionalFilter("type", itemType),
		Sort:    []string{"date:desc"},
	})
}

// Awards lists awards newest year first. A zero year lists every year.
func (c *Client) Awards(ctx context.Context, locale string, year int) (Collection[Award], bool) {
	var filters []Filter
	if year > 0 {
		filters = append(filters, Eq("year", year))
	}
	return FetchJSON[Collection[Award]](ctx, c, EndpointAwards, Options{
		Locale:  locale,
		Filters: filters,
		Sort:    []string{"year:desc"},
	})
}

// Events lists events by date.
func (c *Client) Events(ctx context.Context, locale string, scope EventScope) (Collection[Event], bool) {
	var filters []Filter
	switch scope {
	case UpcomingEvents:
		filters = append(filters, Eq("isUpcoming", true))
	case PastEvents:
		filters = append(filters, Eq("isUpcoming", false))
	}
	return FetchJSON[Collection[Event]](ctx, c, EndpointEvents, Options{
		Locale:  locale,
		Filters: filters,
		Sort:    []string{"date:asc"},
	})
}

// EventBySlug returns the first event with slug, with its image and gallery.
func (c *Client) EventBySlug(ctx context.Context, slug string, locale string) (Entry[Event], bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Entry[Event]{}, false
	}
	list, ok := FetchJSON[Collection[Event]](ctx, c, EndpointEvents, Options{
		Locale:   locale,
		Filters:  []Filter{Eq("slug", slug)},
		Populate: Fields{"image", "gallery"},
	})
	if !ok || len(list.Data) == 0 {
		return Entry[Event]{}, false
	}
	return list.Data[0], true
}

// SiteSettings returns the site-wide settings.
func (c *Client) SiteSettings(ctx context.Context, locale string) (SiteSetting, bool) {
	single, ok := FetchJSON[Single[SiteSetting]](ctx, c, EndpointSiteSetting, Options{Locale: locale})
	if !ok || single.Data == nil {
		return SiteSetting{}, false
	}
	return single.Data.Attributes, true
}

func optionalFilter(key string, value string) []Filter {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return []Filter{{Key: key, Value: value}}
}
