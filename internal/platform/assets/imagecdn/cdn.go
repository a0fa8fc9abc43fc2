// Package imagecdn resolves bundled image assets to delivery URLs.
//
// The site ships its numbered fallback photographs under /images. When an
// asset base URL is configured those files are served from a CDN instead,
// and Cloudinary bases additionally receive resize transforms.
package imagecdn

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// LocalBase is the path prefix of images served by the site itself.
const LocalBase = "/images"

// ErrAssetIDRequired is returned when a request names no asset.
var ErrAssetIDRequired = errors.New("asset id is required")

// Delivery describes the rendered size.
type Delivery struct {
	WidthPX int
}

// Request identifies one asset and optional transforms.
type Request struct {
	AssetID   string
	Extension string
	Delivery  *Delivery
}

// CDN builds asset URLs against one base.
type CDN struct {
	base       string
	cloudinary bool
}

// New returns a CDN rooted at base. An empty base resolves to LocalBase.
func New(base string) CDN {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = LocalBase
	}
	return CDN{base: base, cloudinary: isCloudinary(base)}
}

// Base returns the normalized base URL.
func (c CDN) Base() string {
	if c.base == "" {
		return LocalBase
	}
	return c.base
}

// URL resolves a request to a delivery URL. Transforms are ignored for
// bases that cannot apply them.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimSpace(req.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	file := escapePath(assetID) + ext

	parts := []string{c.Base()}
	if c.cloudinary && req.Delivery != nil && req.Delivery.WidthPX > 0 {
		parts = append(parts, deliveryTransform(req.Delivery.WidthPX))
	}
	parts = append(parts, file)
	return strings.Join(parts, "/"), nil
}

// Resize rewrites src, a URL under this CDN's base, to deliver at most
// widthPX wide. Other URLs and bases without transforms pass through.
func (c CDN) Resize(src string, widthPX int) string {
	if !c.cloudinary || widthPX <= 0 {
		return src
	}
	prefix := c.Base() + "/"
	rest, ok := strings.CutPrefix(src, prefix)
	if !ok || rest == "" {
		return src
	}
	return prefix + deliveryTransform(widthPX) + "/" + rest
}

func deliveryTransform(widthPX int) string {
	return fmt.Sprintf("f_auto,q_auto,dpr_auto,c_limit,w_%d", widthPX)
}

// Numbered returns the URL of numbered fallback photograph n.
func (c CDN) Numbered(n int) string {
	u, _ := c.URL(Request{AssetID: fmt.Sprintf("%d", n), Extension: ".jpeg"})
	return u
}

// Local reports whether URLs resolve to the site's own image directory, which
// must then be served from disk.
func (c CDN) Local() bool {
	return c.Base() == LocalBase
}

func isCloudinary(base string) bool {
	u, err := url.Parse(base)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), "res.cloudinary.com")
}

func escapePath(id string) string {
	segments := strings.Split(id, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
