package shell

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/branding"
	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
	"github.com/kalakshetraodisha/website/internal/services/web/static"
)

// ManifestIcon is one web app manifest icon.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// Manifest is the web app manifest document.
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Scope           string         `json:"scope"`
	Display         string         `json:"display"`
	Orientation     string         `json:"orientation"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Lang            string         `json:"lang"`
	Categories      []string       `json:"categories"`
	Icons           []ManifestIcon `json:"icons"`
}

const manifestDescription = "Preserving and promoting the rich cultural heritage of Odisha through traditional arts, crafts and performances."

// service owns the shell documents and file systems.
type service struct {
	assets    fs.FS
	images    http.FileSystem
	manifest  []byte
	manifestErr error
}

func newService(assets fs.FS, imagesDir string) service {
	svc := service{assets: assets}
	if dir := strings.TrimSpace(imagesDir); dir != "" {
		svc.images = http.Dir(dir)
	}
	svc.manifest, svc.manifestErr = json.Marshal(buildManifest())
	return svc
}

// buildManifest describes the installed app from the brand constants.
func buildManifest() Manifest {
	return Manifest{
		Name:            branding.AppName,
		ShortName:       branding.ShortName,
		Description:     manifestDescription,
		StartURL:        routepath.Root,
		Scope:           routepath.Root,
		Display:         "standalone",
		Orientation:     "portrait-primary",
		ThemeColor:      branding.ThemeColor,
		BackgroundColor: branding.BackgroundColor,
		Lang:            platformi18n.Default().Code,
		Categories:      []string{"education", "entertainment", "lifestyle"},
		Icons: []ManifestIcon{
			{Src: routepath.StaticPrefix + "icon.svg", Sizes: "any", Type: "image/svg+xml", Purpose: "any"},
			{Src: routepath.StaticPrefix + "icon-192.png", Sizes: "192x192", Type: "image/png", Purpose: "any maskable"},
			{Src: routepath.StaticPrefix + "icon-512.png", Sizes: "512x512", Type: "image/png", Purpose: "any maskable"},
		},
	}
}

// serviceWorker returns the service worker script.
func (s service) serviceWorker() ([]byte, error) {
	if s.assets == nil {
		return nil, fs.ErrNotExist
	}
	return fs.ReadFile(s.assets, static.ServiceWorker)
}
