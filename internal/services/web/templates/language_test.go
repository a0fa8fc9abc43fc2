package templates

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLanguageOptionsSwapLocaleSegment(t *testing.T) {
	t.Parallel()

	page := PageContext{Lang: "or", Path: "/gallery", Query: "category=events"}
	got := LanguageOptions(page)
	want := []LanguageOption{
		{Code: "en", Label: "English", URL: "/en/gallery?category=events"},
		{Code: "or", Label: "ଓଡ଼ିଆ", URL: "/or/gallery?category=events", Active: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LanguageOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestLanguageOptionsHomePath(t *testing.T) {
	t.Parallel()

	got := LanguageOptions(PageContext{Lang: "en", Path: "/"})
	if got[1].URL != "/or" {
		t.Fatalf("URL = %q, want %q", got[1].URL, "/or")
	}
}

func TestActiveLanguageLabel(t *testing.T) {
	t.Parallel()

	if got := ActiveLanguageLabel(PageContext{Lang: "or", Path: "/"}); got != "ଓଡ଼ିଆ" {
		t.Fatalf("ActiveLanguageLabel() = %q, want %q", got, "ଓଡ଼ିଆ")
	}
	if got := ActiveLanguageLabel(PageContext{Lang: "xx", Path: "/"}); got != "English" {
		t.Fatalf("ActiveLanguageLabel(unknown) = %q, want %q", got, "English")
	}
}
