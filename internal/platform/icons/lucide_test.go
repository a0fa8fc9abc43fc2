package icons

import (
	"strings"
	"testing"
)

func TestCatalogNamesAreUnique(t *testing.T) {
	defs := Catalog()
	if len(defs) == 0 {
		t.Fatal("expected catalog to include icon definitions")
	}
	seen := make(map[string]struct{})
	for _, def := range defs {
		if _, ok := seen[def.Name]; ok {
			t.Errorf("duplicate icon name in catalog: %s", def.Name)
		}
		seen[def.Name] = struct{}{}
		if strings.TrimSpace(def.Description) == "" {
			t.Errorf("icon %s missing description", def.Name)
		}
	}
}

func TestSpriteDefinesEveryCatalogIcon(t *testing.T) {
	sprite := LucideSprite()
	for _, name := range Names() {
		if !strings.Contains(sprite, `id="`+LucideSymbolID(name)+`"`) {
			t.Errorf("sprite missing symbol for %s", name)
		}
	}
	if got, want := strings.Count(sprite, "<symbol "), len(Catalog()); got != want {
		t.Fatalf("sprite symbols = %d, want %d", got, want)
	}
}

func TestLucideNameOrDefault(t *testing.T) {
	cases := map[string]string{
		"map-pin":     "map-pin",
		" Book-Open ": "book-open",
		"":            Fallback,
		"spaceship":   Fallback,
	}
	for input, want := range cases {
		if got := LucideNameOrDefault(input); got != want {
			t.Fatalf("LucideNameOrDefault(%q) = %q, want %q", input, got, want)
		}
	}
	if got, want := LucideSymbolID("unknown"), "lucide-target"; got != want {
		t.Fatalf("LucideSymbolID() = %q, want %q", got, want)
	}
}
