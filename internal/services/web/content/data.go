package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedDataFS embed.FS

type programRecord struct {
	Slug             string   `yaml:"slug"`
	Title            string   `yaml:"title"`
	ShortDescription string   `yaml:"short_description"`
	Icon             string   `yaml:"icon"`
	Image            string   `yaml:"image"`
	Description      string   `yaml:"description"`
	Highlights       []string `yaml:"highlights"`
	Impact           []Stat   `yaml:"impact"`
}

type programsFile struct {
	Programs          []programRecord `yaml:"programs"`
	DefaultHighlights []string        `yaml:"default_highlights"`
	DefaultImpact     []Stat          `yaml:"default_impact"`
}

type leadersFile struct {
	Leaders []Leader `yaml:"leaders"`
}

type pressFile struct {
	Articles []PressArticle `yaml:"articles"`
	Releases []PressRelease `yaml:"releases"`
}

type categoryRecord struct {
	ID    string    `yaml:"id"`
	Label Localized `yaml:"label"`
}

type galleryFile struct {
	Categories     []categoryRecord `yaml:"categories"`
	FallbackImages int              `yaml:"fallback_images"`
	AltPrefix      string           `yaml:"alt_prefix"`
}

// Data is the bundled fallback content.
type Data struct {
	programs          []programRecord
	defaultHighlights []string
	defaultImpact     []Stat
	leaders           []Leader
	press             Press
	categories        []categoryRecord
	fallbackImages    int
	altPrefix         string
	settings          Settings
}

var loadEmbedded = sync.OnceValues(func() (*Data, error) {
	return LoadData(embeddedDataFS)
})

// EmbeddedData returns the fallback content compiled into the binary.
func EmbeddedData() (*Data, error) {
	return loadEmbedded()
}

// LoadData reads and validates fallback content from fsys, which must hold a
// data/ directory.
func LoadData(fsys fs.FS) (*Data, error) {
	var (
		programs programsFile
		leaders  leadersFile
		press    pressFile
		gallery  galleryFile
		settings Settings
	)
	files := []struct {
		name   string
		target any
	}{
		{name: "programs.yaml", target: &programs},
		{name: "leaders.yaml", target: &leaders},
		{name: "press.yaml", target: &press},
		{name: "gallery.yaml", target: &gallery},
		{name: "site.yaml", target: &settings},
	}
	for _, file := range files {
		if err := decodeFile(fsys, "data/"+file.name, file.target); err != nil {
			return nil, err
		}
	}

	data := &Data{
		programs:          programs.Programs,
		defaultHighlights: programs.DefaultHighlights,
		defaultImpact:     programs.DefaultImpact,
		leaders:           leaders.Leaders,
		press:             Press{Articles: press.Articles, Releases: press.Releases},
		categories:        gallery.Categories,
		fallbackImages:    gallery.FallbackImages,
		altPrefix:         strings.TrimSpace(gallery.AltPrefix),
		settings:          settings,
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return data, nil
}

func decodeFile(fsys fs.FS, path string, target any) error {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (d *Data) validate() error {
	var errs []error
	if len(d.programs) == 0 {
		errs = append(errs, errors.New("programs: at least one program is required"))
	}
	slugs := map[string]struct{}{}
	for i, program := range d.programs {
		slug := strings.TrimSpace(program.Slug)
		if slug == "" {
			errs = append(errs, fmt.Errorf("programs[%d]: slug is required", i))
			continue
		}
		if _, ok := slugs[slug]; ok {
			errs = append(errs, fmt.Errorf("programs[%d]: duplicate slug %q", i, slug))
		}
		slugs[slug] = struct{}{}
		if strings.TrimSpace(program.Title) == "" {
			errs = append(errs, fmt.Errorf("programs[%d]: title is required", i))
		}
	}
	if len(d.defaultHighlights) == 0 || len(d.defaultImpact) == 0 {
		errs = append(errs, errors.New("programs: default highlights and impact are required"))
	}
	if len(d.categories) == 0 {
		errs = append(errs, errors.New("gallery: at least one category is required"))
	}
	for i, category := range d.categories {
		if strings.TrimSpace(category.ID) == "" || strings.TrimSpace(category.Label.EN) == "" {
			errs = append(errs, fmt.Errorf("gallery: category %d needs an id and an English label", i))
		}
	}
	if d.fallbackImages <= 0 {
		errs = append(errs, errors.New("gallery: fallback_images must be positive"))
	}
	for i, leader := range d.leaders {
		if leader.Category != LeaderExecutive && leader.Category != LeaderAdvisor {
			errs = append(errs, fmt.Errorf("leaders[%d]: unknown category %q", i, leader.Category))
		}
	}
	return errors.Join(errs...)
}

// ProgramSlugs returns the bundled program slugs in display order.
func (d *Data) ProgramSlugs() []string {
	slugs := make([]string, 0, len(d.programs))
	for _, program := range d.programs {
		slugs = append(slugs, program.Slug)
	}
	return slugs
}

func (d *Data) programBySlug(slug string) (programRecord, bool) {
	for _, program := range d.programs {
		if program.Slug == slug {
			return program, true
		}
	}
	return programRecord{}, false
}
