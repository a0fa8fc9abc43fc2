package content

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/icons"
	"github.com/kalakshetraodisha/website/internal/services/web/gallery"
	"github.com/kalakshetraodisha/website/internal/services/web/integration/cms"
	"github.com/microcosm-cc/bluemonday"
)

// Gateway is the CMS surface the service reads from. *cms.Client implements
// it; every method reports absence with false.
type Gateway interface {
	Programs(ctx context.Context, locale string) (cms.Collection[cms.Program], bool)
	ProgramBySlug(ctx context.Context, slug string, locale string) (cms.Entry[cms.Program], bool)
	GalleryItems(ctx context.Context, locale string, category string) (cms.Collection[cms.GalleryItem], bool)
	Leaders(ctx context.Context, locale string, category string) (cms.Collection[cms.Leader], bool)
	PressItems(ctx context.Context, locale string, itemType string) (cms.Collection[cms.PressItem], bool)
	Awards(ctx context.Context, locale string, year int) (cms.Collection[cms.Award], bool)
	Events(ctx context.Context, locale string, scope cms.EventScope) (cms.Collection[cms.Event], bool)
	SiteSettings(ctx context.Context, locale string) (cms.SiteSetting, bool)
	MediaURL(raw string, fallbackIndex int) string
}

// pressRelease is the CMS press item type listed under releases.
const pressRelease = "release"

// programListImages is the number of numbered images cycled through for CMS
// programs without an image.
const programListImages = 10

// Service assembles page content.
type Service struct {
	gateway Gateway
	data    *Data
	policy  *bluemonday.Policy
}

// NewService returns a service reading from gateway with data as fallback.
// A nil gateway serves fallback data only.
func NewService(gateway Gateway, data *Data) *Service {
	if gateway == nil {
		gateway = (*cms.Client)(nil)
	}
	return &Service{
		gateway: gateway,
		data:    data,
		policy:  bluemonday.UGCPolicy(),
	}
}

// Data returns the bundled fallback content.
func (s *Service) Data() *Data {
	return s.data
}

// Sanitize cleans CMS rich text for rendering.
func (s *Service) Sanitize(raw string) template.HTML {
	return template.HTML(s.policy.Sanitize(raw))
}

// Programs lists program cards.
func (s *Service) Programs(ctx context.Context, locale string) []Program {
	list, ok := s.gateway.Programs(ctx, locale)
	if !ok || len(list.Data) == 0 {
		programs := make([]Program, 0, len(s.data.programs))
		for _, record := range s.data.programs {
			programs = append(programs, record.card())
		}
		return programs
	}
	programs := make([]Program, 0, len(list.Data))
	for i, entry := range list.Data {
		attrs := entry.Attributes
		programs = append(programs, Program{
			Slug:             strings.TrimSpace(attrs.Slug),
			Title:            attrs.Title,
			ShortDescription: attrs.ShortDescription,
			Icon:             icons.LucideNameOrDefault(attrs.Icon),
			Image:            s.gateway.MediaURL(attrs.Image.URL(), i%programListImages+1),
		})
	}
	return programs
}

// Program returns the detail of slug, or false when neither the CMS nor the
// bundled data knows it.
func (s *Service) Program(ctx context.Context, locale string, slug string) (ProgramDetail, bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ProgramDetail{}, false
	}
	fallback, hasFallback := s.data.programBySlug(slug)
	entry, ok := s.gateway.ProgramBySlug(ctx, slug, locale)
	if !ok {
		if !hasFallback {
			return ProgramDetail{}, false
		}
		return ProgramDetail{
			Program:     fallback.card(),
			Description: s.Sanitize(fallback.Description),
			Highlights:  fallback.Highlights,
			Impact:      fallback.Impact,
		}, true
	}

	attrs := entry.Attributes
	detail := ProgramDetail{
		Program: Program{
			Slug:             slug,
			Title:            attrs.Title,
			ShortDescription: attrs.ShortDescription,
			Icon:             icons.LucideNameOrDefault(attrs.Icon),
			Image:            s.gateway.MediaURL(attrs.Image.URL(), 1),
		},
		Description: s.Sanitize(attrs.Description),
		Highlights:  s.data.defaultHighlights,
		Impact:      s.data.defaultImpact,
	}
	if hasFallback {
		detail.Highlights = fallback.Highlights
		detail.Impact = fallback.Impact
	}
	return detail, true
}

// ProgramSlugs lists every program slug: bundled ones first, then CMS-only
// ones.
func (s *Service) ProgramSlugs(ctx context.Context, locale string) []string {
	slugs := s.data.ProgramSlugs()
	seen := make(map[string]struct{}, len(slugs))
	for _, slug := range slugs {
		seen[slug] = struct{}{}
	}
	list, ok := s.gateway.Programs(ctx, locale)
	if !ok {
		return slugs
	}
	for _, entry := range list.Data {
		slug := strings.TrimSpace(entry.Attributes.Slug)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	return slugs
}

// Categories returns the gallery categories labeled for locale.
func (s *Service) Categories(locale string) []gallery.Category {
	categories := make([]gallery.Category, 0, len(s.data.categories))
	for _, category := range s.data.categories {
		categories = append(categories, gallery.Category{ID: category.ID, Label: category.Label.For(locale)})
	}
	return categories
}

// Gallery returns the gallery images for locale.
func (s *Service) Gallery(ctx context.Context, locale string) Gallery {
	result := Gallery{Categories: s.Categories(locale)}
	list, ok := s.gateway.GalleryItems(ctx, locale, "")
	if !ok || len(list.Data) == 0 {
		result.Images = s.fallbackImages()
		return result
	}
	result.Images = make([]gallery.Image, 0, len(list.Data))
	for i, entry := range list.Data {
		attrs := entry.Attributes
		alt := strings.TrimSpace(attrs.Title)
		if alt == "" {
			alt = fmt.Sprintf("Gallery image %d", i+1)
		}
		category := strings.TrimSpace(attrs.Category)
		if category == "" {
			category = s.cyclicCategory(i)
		}
		aspect, ok := gallery.AspectForSize(attrs.Image.Size())
		if !ok {
			aspect = gallery.PatternAspect(i)
		}
		result.Images = append(result.Images, gallery.Image{
			ID:       fmt.Sprintf("strapi-%d", entry.ID),
			Src:      s.gateway.MediaURL(attrs.Image.URL(), i+1),
			Alt:      alt,
			Category: category,
			Aspect:   aspect,
		})
	}
	return result
}

// fallbackImages returns the numbered bundled photographs.
func (s *Service) fallbackImages() []gallery.Image {
	images := make([]gallery.Image, 0, s.data.fallbackImages)
	for i := 1; i <= s.data.fallbackImages; i++ {
		images = append(images, gallery.Image{
			ID:       fmt.Sprintf("img-%d", i),
			Src:      s.gateway.MediaURL("", i),
			Alt:      fmt.Sprintf("%s %d", s.data.altPrefix, i),
			Category: s.cyclicCategory(i - 1),
			Aspect:   gallery.PatternAspect(i),
		})
	}
	return images
}

func (s *Service) cyclicCategory(index int) string {
	return s.data.categories[index%len(s.data.categories)].ID
}

// Leadership returns the board and advisory council.
func (s *Service) Leadership(ctx context.Context, locale string) Leadership {
	leaders := s.data.leaders
	if list, ok := s.gateway.Leaders(ctx, locale, ""); ok && len(list.Data) > 0 {
		leaders = make([]Leader, 0, len(list.Data))
		for i, entry := range list.Data {
			attrs := entry.Attributes
			category := strings.ToLower(strings.TrimSpace(attrs.Category))
			if category != LeaderAdvisor {
				category = LeaderExecutive
			}
			leaders = append(leaders, Leader{
				ID:       fmt.Sprintf("%d", entry.ID),
				Category: category,
				Name:     attrs.Name,
				Role:     attrs.Role,
				Bio:      attrs.Bio,
				Image:    s.gateway.MediaURL(attrs.Photo.URL(), i+1),
			})
		}
	}

	var result Leadership
	for _, leader := range leaders {
		if leader.Category == LeaderAdvisor {
			result.Advisors = append(result.Advisors, leader)
			continue
		}
		result.Executives = append(result.Executives, leader)
	}
	return result
}

// Press returns news coverage and press releases.
func (s *Service) Press(ctx context.Context, locale string) Press {
	list, ok := s.gateway.PressItems(ctx, locale, "")
	if !ok || len(list.Data) == 0 {
		return s.data.press
	}
	var press Press
	for i, entry := range list.Data {
		attrs := entry.Attributes
		id := fmt.Sprintf("%d", entry.ID)
		if strings.EqualFold(strings.TrimSpace(attrs.Type), pressRelease) {
			press.Releases = append(press.Releases, PressRelease{ID: id, Title: attrs.Title, Date: attrs.Date, Link: attrs.Link})
			continue
		}
		press.Articles = append(press.Articles, PressArticle{
			ID:     id,
			Title:  attrs.Title,
			Source: attrs.Source,
			Date:   attrs.Date,
			Link:   linkOrPlaceholder(attrs.Link),
			Image:  s.gateway.MediaURL(attrs.Image.URL(), i+1),
		})
	}
	return press
}

// Awards lists Samman recipients, newest first. There is no bundled list.
func (s *Service) Awards(ctx context.Context, locale string) []Award {
	list, ok := s.gateway.Awards(ctx, locale, 0)
	if !ok {
		return nil
	}
	awards := make([]Award, 0, len(list.Data))
	for i, entry := range list.Data {
		attrs := entry.Attributes
		awards = append(awards, Award{
			Title:       attrs.Title,
			Recipient:   attrs.Recipient,
			Year:        attrs.Year,
			Description: attrs.Description,
			Image:       s.gateway.MediaURL(attrs.Image.URL(), i+1),
		})
	}
	return awards
}

// Events lists events from the CMS. An empty result renders the coming soon
// notice.
func (s *Service) Events(ctx context.Context, locale string) Events {
	list, ok := s.gateway.Events(ctx, locale, cms.AllEvents)
	if !ok {
		return Events{}
	}
	var events Events
	for i, entry := range list.Data {
		attrs := entry.Attributes
		event := Event{
			Slug:        attrs.Slug,
			Title:       attrs.Title,
			Date:        attrs.Date,
			Location:    attrs.Location,
			Description: s.Sanitize(attrs.Description),
			Image:       s.gateway.MediaURL(attrs.Image.URL(), i+1),
			Upcoming:    attrs.IsUpcoming,
		}
		if event.Upcoming {
			events.Upcoming = append(events.Upcoming, event)
			continue
		}
		events.Past = append(events.Past, event)
	}
	return events
}

// Settings returns site-wide content. CMS values override bundled ones field
// by field.
func (s *Service) Settings(ctx context.Context, locale string) Settings {
	settings := s.data.settings
	settings.Phones = append([]Phone(nil), settings.Phones...)
	settings.Emails = append([]string(nil), settings.Emails...)
	settings.Socials = append([]Social(nil), settings.Socials...)

	remote, ok := s.gateway.SiteSettings(ctx, locale)
	if !ok {
		return settings
	}
	if v := strings.TrimSpace(remote.SiteName); v != "" {
		settings.Name = v
	}
	if v := strings.TrimSpace(remote.Tagline); v != "" {
		settings.Tagline = v
	}
	if v := strings.TrimSpace(remote.Address); v != "" {
		settings.Address = v
	}
	if v := strings.TrimSpace(remote.Email); v != "" {
		settings.Emails = prependUnique(settings.Emails, v)
	}
	if v := strings.TrimSpace(remote.Phone); v != "" && v != settings.PrimaryPhone().Display {
		settings.Phones = append([]Phone{{Display: v, Href: TelHref(v)}}, settings.Phones...)
	}
	overrides := map[string]string{
		"facebook":  remote.Facebook,
		"instagram": remote.Instagram,
		"twitter":   remote.Twitter,
		"youtube":   remote.YouTube,
	}
	for i, social := range settings.Socials {
		if v := strings.TrimSpace(overrides[social.Name]); v != "" {
			settings.Socials[i].URL = v
		}
	}
	return settings
}

// TelHref builds a tel: link keeping only the leading plus and digits.
func TelHref(display string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for i, r := range strings.TrimSpace(display) {
		if (r == '+' && i == 0) || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (r programRecord) card() Program {
	return Program{
		Slug:             r.Slug,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Icon:             icons.LucideNameOrDefault(r.Icon),
		Image:            r.Image,
	}
}

func prependUnique(values []string, value string) []string {
	out := []string{value}
	for _, existing := range values {
		if !strings.EqualFold(existing, value) {
			out = append(out, existing)
		}
	}
	return out
}

func linkOrPlaceholder(link string) string {
	if strings.TrimSpace(link) == "" {
		return "#"
	}
	return link
}
