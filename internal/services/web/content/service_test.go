package content

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/kalakshetraodisha/website/internal/services/web/gallery"
	"github.com/kalakshetraodisha/website/internal/services/web/integration/cms"
)

type fakeGateway struct {
	*cms.Client

	programs    *cms.Collection[cms.Program]
	program     *cms.Entry[cms.Program]
	galleryList *cms.Collection[cms.GalleryItem]
	leaders     *cms.Collection[cms.Leader]
	press       *cms.Collection[cms.PressItem]
	awards      *cms.Collection[cms.Award]
	events      *cms.Collection[cms.Event]
	settings    *cms.SiteSetting
}

func (f fakeGateway) Programs(context.Context, string) (cms.Collection[cms.Program], bool) {
	return deref(f.programs)
}

func (f fakeGateway) ProgramBySlug(_ context.Context, slug string, _ string) (cms.Entry[cms.Program], bool) {
	if f.program == nil || f.program.Attributes.Slug != slug {
		return cms.Entry[cms.Program]{}, false
	}
	return *f.program, true
}

func (f fakeGateway) GalleryItems(context.Context, string, string) (cms.Collection[cms.GalleryItem], bool) {
	return deref(f.galleryList)
}

func (f fakeGateway) Leaders(context.Context, string, string) (cms.Collection[cms.Leader], bool) {
	return deref(f.leaders)
}

func (f fakeGateway) PressItems(context.Context, string, string) (cms.Collection[cms.PressItem], bool) {
	return deref(f.press)
}

func (f fakeGateway) Awards(context.Context, string, int) (cms.Collection[cms.Award], bool) {
	return deref(f.awards)
}

func (f fakeGateway) Events(context.Context, string, cms.EventScope) (cms.Collection[cms.Event], bool) {
	return deref(f.events)
}

func (f fakeGateway) SiteSettings(context.Context, string) (cms.SiteSetting, bool) {
	return deref(f.settings)
}

func deref[T any](value *T) (T, bool) {
	if value == nil {
		var zero T
		return zero, false
	}
	return *value, true
}

func newTestService(t *testing.T, gateway Gateway) *Service {
	t.Helper()
	data, err := EmbeddedData()
	if err != nil {
		t.Fatalf("EmbeddedData() error = %v", err)
	}
	return NewService(gateway, data)
}

func media(url string) cms.Media {
	return cms.Media{Data: &cms.MediaEntry{Attributes: cms.MediaAttributes{URL: url}}}
}

func TestProgramsFallBackWhenAbsentOrEmpty(t *testing.T) {
	t.Parallel()

	want := []string{"village-day", "art-workshops", "cultural-documentation", "artist-scholarships"}
	gateways := map[string]Gateway{
		"absent": fakeGateway{},
		"empty":  fakeGateway{programs: &cms.Collection[cms.Program]{}},
		"nil":    nil,
	}
	for name, gateway := range gateways {
		programs := newTestService(t, gateway).Programs(context.Background(), "en")
		var slugs []string
		for _, program := range programs {
			slugs = append(slugs, program.Slug)
		}
		if diff := cmp.Diff(want, slugs); diff != "" {
			t.Fatalf("%s: slugs mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestProgramsFromCMS(t *testing.T) {
	t.Parallel()

	gateway := fakeGateway{
		Client: cms.NewClient(cms.Config{BaseURL: "https://cms.example.org"}),
		programs: &cms.Collection[cms.Program]{Data: []cms.Entry[cms.Program]{
			{ID: 1, Attributes: cms.Program{Title: "Folk Theatre", Slug: "folk-theatre", Icon: "spaceship"}},
			{ID: 2, Attributes: cms.Program{Title: "Crafts", Slug: "crafts", Icon: "users", Image: media("/uploads/crafts.jpg")}},
		}},
	}
	programs := newTestService(t, gateway).Programs(context.Background(), "or")
	if len(programs) != 2 {
		t.Fatalf("len(programs) = %d, want 2", len(programs))
	}
	if programs[0].Icon != "target" || programs[0].Image != "/images/1.jpeg" {
		t.Fatalf("programs[0] = %+v, want target icon and first numbered image", programs[0])
	}
	if programs[1].Icon != "users" || programs[1].Image != "https://cms.example.org/uploads/crafts.jpg" {
		t.Fatalf("programs[1] = %+v, want users icon and CMS image", programs[1])
	}
}

func TestProgramDetail(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, fakeGateway{})
	detail, ok := svc.Program(context.Background(), "en", "art-workshops")
	if !ok {
		t.Fatal("Program(art-workshops) not found")
	}
	if detail.Title != "Art Workshops" || detail.Icon != "users" {
		t.Fatalf("detail = %+v", detail.Program)
	}
	if len(detail.Highlights) != 4 || detail.Highlights[0] != "Expert instruction from master artisans" {
		t.Fatalf("highlights = %v", detail.Highlights)
	}
	if len(detail.Impact) != 3 || detail.Impact[1] != (Stat{Value: "500+", Label: "Students Trained"}) {
		t.Fatalf("impact = %v", detail.Impact)
	}
	if !strings.Contains(string(detail.Description), "<li>Pattachitra painting techniques</li>") {
		t.Fatalf("description = %q, want workshop list", detail.Description)
	}

	if _, ok := svc.Program(context.Background(), "en", "unknown"); ok {
		t.Fatal("Program(unknown) found, want absent")
	}
}

func TestProgramDetailFromCMSUsesDefaults(t *testing.T) {
	t.Parallel()

	gateway := fakeGateway{program: &cms.Entry[cms.Program]{ID: 9, Attributes: cms.Program{
		Title:       "Folk Theatre",
		Slug:        "folk-theatre",
		Description: `<p>Jatra<script>alert(1)</script></p>`,
	}}}
	detail, ok := newTestService(t, gateway).Program(context.Background(), "en", "folk-theatre")
	if !ok {
		t.Fatal("Program(folk-theatre) not found")
	}
	if detail.Icon != "target" || detail.Image != "/images/1.jpeg" {
		t.Fatalf("detail = %+v, want default icon and image", detail.Program)
	}
	if diff := cmp.Diff([]string{"Community-focused approach", "Expert guidance and support", "Sustainable cultural impact", "Measurable outcomes"}, detail.Highlights); diff != "" {
		t.Fatalf("highlights mismatch (-want +got):\n%s", diff)
	}
	if len(detail.Impact) != 3 || detail.Impact[0].Label != "Beneficiaries" {
		t.Fatalf("impact = %v", detail.Impact)
	}
	if strings.Contains(string(detail.Description), "script") {
		t.Fatalf("description = %q, want script removed", detail.Description)
	}
}

func TestProgramDetailFromCMSKeepsBundledHighlights(t *testing.T) {
	t.Parallel()

	gateway := fakeGateway{program: &cms.Entry[cms.Program]{Attributes: cms.Program{Title: "Village Day", Slug: "village-day"}}}
	detail, ok := newTestService(t, gateway).Program(context.Background(), "en", "village-day")
	if !ok {
		t.Fatal("Program(village-day) not found")
	}
	if detail.Title != "Village Day" {
		t.Fatalf("title = %q, want CMS title", detail.Title)
	}
	if detail.Highlights[0] != "Annual celebrations across 50+ villages" {
		t.Fatalf("highlights = %v, want bundled village day highlights", detail.Highlights)
	}
}

func TestProgramSlugsMergesCMS(t *testing.T) {
	t.Parallel()

	gateway := fakeGateway{programs: &cms.Collection[cms.Program]{Data: []cms.Entry[cms.Program]{
		{Attributes: cms.Program{Slug: "village-day"}},
		{Attributes: cms.Program{Slug: "folk-theatre"}},
		{Attributes: cms.Program{Slug: " "}},
	}}}
	got := newTestService(t, gateway).ProgramSlugs(context.Background(), "en")
	want := []string{"village-day", "art-workshops", "cultural-documentation", "artist-scholarships", "folk-theatre"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ProgramSlugs() mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbackGallery(t *testing.T) {
	t.Parallel()

	result := newTestService(t, fakeGateway{}).Gallery(context.Background(), "en")
	if len(result.Images) != cms.FallbackImageCount {
		t.Fatalf("len(images) = %d, want %d", len(result.Images), cms.FallbackImageCount)
	}
	first := result.Images[0]
	want := gallery.Image{
		ID:       "img-1",
		Src:      "/images/1.jpeg",
		Alt:      "Kalakshetra Odisha - Cultural Heritage 1",
		Category: "events",
		Aspect:   gallery.AspectPortrait,
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("first image mismatch (-want +got):\n%s", diff)
	}
	if got := result.Images[5].Category; got != "events" {
		t.Fatalf("image 6 category = %q, want events", got)
	}
	if got := result.Images[73].Src; got != "/images/74.jpeg" {
		t.Fatalf("image 74 src = %q", got)
	}
	if len(result.Categories) != 5 || result.Categories[2].Label != "Awards & Samman" {
		t.Fatalf("categories = %v", result.Categories)
	}
}

func TestGalleryFromCMSAppliesFieldDefaults(t *testing.T) {
	t.Parallel()

	gateway := fakeGateway{galleryList: &cms.Collection[cms.GalleryItem]{Data: []cms.Entry[cms.GalleryItem]{
		{ID: 11, Attributes: cms.GalleryItem{Title: "Samman night", Category: "awards", Image: media("/images/samman.jpg")}},
		{ID: 12},
	}}}
	result := newTestService(t, gateway).Gallery(context.Background(), "or")
	want := []gallery.Image{
		{ID: "strapi-11", Src: "/images/samman.jpg", Alt: "Samman night", Category: "awards", Aspect: gallery.AspectSquare},
		{ID: "strapi-12", Src: "/images/2.jpeg", Alt: "Gallery image 2", Category: "village-day", Aspect: gallery.AspectPortrait},
	}
	if diff := cmp.Diff(want, result.Images); diff != "" {
		t.Fatalf("images mismatch (-want +got):\n%s", diff)
	}
	if got := result.Categories[0].Label; got != "କାର୍ଯ୍ୟକ୍ରମ" {
		t.Fatalf("Odia category label = %q", got)
	}
}

func TestGalleryFromCMSDerivesAspectFromMediaSize(t *testing.T) {
	t.Parallel()

	sized := func(url string, width int, height int) cms.Media {
		m := media(url)
		m.Data.Attributes.Width = width
		m.Data.Attributes.Height = height
		return m
	}
	gateway := fakeGateway{galleryList: &cms.Collection[cms.GalleryItem]{Data: []cms.Entry[cms.GalleryItem]{
		{ID: 1, Attributes: cms.GalleryItem{Title: "Rath", Category: "events", Image: sized("/uploads/rath.jpg", 1920, 1080)}},
		{ID: 2, Attributes: cms.GalleryItem{Title: "Dancer", Category: "events", Image: sized("/uploads/dancer.jpg", 900, 1200)}},
		{ID: 3, Attributes: cms.GalleryItem{Title: "Stage", Category: "events", Image: sized("/uploads/stage.jpg", 0, 600)}},
	}}}
	result := newTestService(t, gateway).Gallery(context.Background(), "en")
	var got []gallery.Aspect
	for _, image := range result.Images {
		got = append(got, image.Aspect)
	}
	want := []gallery.Aspect{gallery.AspectWide, gallery.AspectPortrait, gallery.PatternAspect(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("aspects mismatch (-want +got):\n%s", diff)
	}
}

func TestLeadershipFallbackIsBilingual(t *testing.T) {
	t.Parallel()

	leadership := newTestService(t, fakeGateway{}).Leadership(context.Background(), "or")
	if len(leadership.Executives) != 2 || len(leadership.Advisors) != 0 {
		t.Fatalf("leadership = %+v, want two executives", leadership)
	}
	president := leadership.Executives[0]
	if got := president.DisplayName("en"); got != "Shri Ashrumohan Mohanty" {
		t.Fatalf("DisplayName(en) = %q", got)
	}
	if got := president.DisplayRole("or"); got != "ସଭାପତି" {
		t.Fatalf("DisplayRole(or) = %q", got)
	}
}

func TestLeadershipFromCMS(t *testing.T) {
	t.Parallel()

	gateway := fakeGateway{leaders: &cms.Collection[cms.Leader]{Data: []cms.Entry[cms.Leader]{
		{ID: 1, Attributes: cms.Leader{Name: "A", Role: "President"}},
		{ID: 2, Attributes: cms.Leader{Name: "B", Role: "Advisor", Category: "Advisor"}},
	}}}
	leadership := newTestService(t, gateway).Leadership(context.Background(), "or")
	if len(leadership.Executives) != 1 || len(leadership.Advisors) != 1 {
		t.Fatalf("leadership = %+v, want one of each", leadership)
	}
	if got := leadership.Executives[0].DisplayName("or"); got != "A" {
		t.Fatalf("DisplayName(or) = %q, want CMS name", got)
	}
	if got := leadership.Advisors[0].Image; got != "/images/2.jpeg" {
		t.Fatalf("advisor image = %q, want /images/2.jpeg", got)
	}
}

func TestPress(t *testing.T) {
	t.Parallel()

	fallback := newTestService(t, fakeGateway{}).Press(context.Background(), "en")
	if len(fallback.Articles) != 6 || len(fallback.Releases) != 2 {
		t.Fatalf("fallback press = %d articles %d releases, want 6 and 2", len(fallback.Articles), len(fallback.Releases))
	}

	gateway := fakeGateway{press: &cms.Collection[cms.PressItem]{Data: []cms.Entry[cms.PressItem]{
		{ID: 1, Attributes: cms.PressItem{Title: "Annual report", Type: "Release", Date: "2026-01-15"}},
		{ID: 2, Attributes: cms.PressItem{Title: "Samman coverage", Source: "Sambad"}},
	}}}
	press := newTestService(t, gateway).Press(context.Background(), "en")
	if len(press.Articles) != 1 || len(press.Releases) != 1 {
		t.Fatalf("press = %+v, want one article and one release", press)
	}
	if press.Articles[0].Link != "#" {
		t.Fatalf("article link = %q, want placeholder", press.Articles[0].Link)
	}
}

func TestEventsSplitByUpcoming(t *testing.T) {
	t.Parallel()

	if events := newTestService(t, fakeGateway{}).Events(context.Background(), "en"); !events.Empty() {
		t.Fatalf("Events() = %+v, want empty without CMS", events)
	}
	gateway := fakeGateway{events: &cms.Collection[cms.Event]{Data: []cms.Entry[cms.Event]{
		{Attributes: cms.Event{Title: "Village Day 2026", IsUpcoming: true}},
		{Attributes: cms.Event{Title: "Samman 2025"}},
	}}}
	events := newTestService(t, gateway).Events(context.Background(), "en")
	if len(events.Upcoming) != 1 || len(events.Past) != 1 {
		t.Fatalf("events = %+v, want one upcoming and one past", events)
	}
}

func TestAwardsAbsentWithoutCMS(t *testing.T) {
	t.Parallel()

	if awards := newTestService(t, fakeGateway{}).Awards(context.Background(), "en"); awards != nil {
		t.Fatalf("Awards() = %v, want nil", awards)
	}
	gateway := fakeGateway{awards: &cms.Collection[cms.Award]{Data: []cms.Entry[cms.Award]{{Attributes: cms.Award{Title: "Samman", Year: 2025}}}}}
	if awards := newTestService(t, gateway).Awards(context.Background(), "en"); len(awards) != 1 || awards[0].Year != 2025 {
		t.Fatalf("Awards() = %v", awards)
	}
}

func TestSettingsMergesCMSOverrides(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, fakeGateway{})
	bundled := svc.Settings(context.Background(), "en")
	if bundled.PrimaryEmail() != "kalakshetra@gmail.com" {
		t.Fatalf("PrimaryEmail() = %q", bundled.PrimaryEmail())
	}
	if bundled.PrimaryPhone().Href != "tel:+919437083555" {
		t.Fatalf("PrimaryPhone() = %+v", bundled.PrimaryPhone())
	}
	if len(bundled.Objectives) != 6 || len(bundled.Stats) != 4 || len(bundled.Notifications) != 4 {
		t.Fatalf("settings = %+v", bundled)
	}

	gateway := fakeGateway{settings: &cms.SiteSetting{
		Tagline:   "Art of the villages",
		Email:     "info@kalakshetraodisha.org",
		Phone:     "+91 90000 00000",
		Instagram: "https://instagram.com/kalakshetra.new",
	}}
	merged := newTestService(t, gateway).Settings(context.Background(), "en")
	if merged.Tagline != "Art of the villages" {
		t.Fatalf("Tagline = %q", merged.Tagline)
	}
	if diff := cmp.Diff([]string{"info@kalakshetraodisha.org", "kalakshetra@gmail.com", "bmalbishoyi@gmail.com"}, merged.Emails); diff != "" {
		t.Fatalf("emails mismatch (-want +got):\n%s", diff)
	}
	if merged.PrimaryPhone() != (Phone{Display: "+91 90000 00000", Href: "tel:+919000000000"}) {
		t.Fatalf("PrimaryPhone() = %+v", merged.PrimaryPhone())
	}
	if merged.Socials[1].URL != "https://instagram.com/kalakshetra.new" {
		t.Fatalf("instagram = %q", merged.Socials[1].URL)
	}
	if again := svc.Settings(context.Background(), "en"); again.Socials[1].URL != "https://instagram.com/kalakshetraodisha" {
		t.Fatalf("bundled settings mutated: %q", again.Socials[1].URL)
	}
}

func TestObjectiveTitlesAreLocalized(t *testing.T) {
	t.Parallel()

	settings := newTestService(t, nil).Settings(context.Background(), LocaleOdia)
	if got := settings.Objectives[3].Title.For(LocaleOdia); got != "ପ୍ରତିବର୍ଷ ଗାଁ ଦିବସ ପାଳନ" {
		t.Fatalf("objective title = %q", got)
	}
	if got := settings.Objectives[3].Title.For("en"); got != "Annual Village Day Celebration" {
		t.Fatalf("objective title = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	if got := FormatDate("2025-12-15"); got != "15 Dec 2025" {
		t.Fatalf("FormatDate() = %q", got)
	}
	if got := FormatLongDate("2025-12-31T10:00:00Z"); got != "31 December 2025" {
		t.Fatalf("FormatLongDate() = %q", got)
	}
	if got := FormatDate("soon"); got != "soon" {
		t.Fatalf("FormatDate(soon) = %q", got)
	}
}

func TestLoadDataRejectsInvalidContent(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"data/programs.yaml": {Data: []byte("programs:\n  - slug: a\n    title: A\n  - slug: a\n    title: B\n")},
		"data/leaders.yaml":  {Data: []byte("leaders:\n  - id: '1'\n    category: chair\n")},
		"data/press.yaml":    {Data: []byte("articles: []\n")},
		"data/gallery.yaml":  {Data: []byte("categories: []\nfallback_images: 0\n")},
		"data/site.yaml":     {Data: []byte("name: X\n")},
	}
	_, err := LoadData(files)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, fragment := range []string{"duplicate slug", "default highlights", "at least one category", "fallback_images", "unknown category"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("error %q missing %q", err, fragment)
		}
	}
}

func TestLoadDataRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"data/programs.yaml": {Data: []byte("programs: []\nextra: 1\n")},
	}
	if _, err := LoadData(files); err == nil || !strings.Contains(err.Error(), "programs.yaml") {
		t.Fatalf("LoadData() error = %v, want programs.yaml parse error", err)
	}
}
