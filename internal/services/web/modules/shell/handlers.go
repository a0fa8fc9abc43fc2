package shell

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kalakshetraodisha/website/internal/services/web/platform/httpx"
	"github.com/kalakshetraodisha/website/internal/services/web/pwa"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

const (
	// StaticCacheControl lets browsers reuse bundled assets for a day.
	StaticCacheControl = "public, max-age=86400"
	// ImageCacheControl marks site photographs as never changing.
	ImageCacheControl = "public, max-age=31536000, immutable"
	// ManifestContentType is the registered web app manifest media type.
	ManifestContentType = "application/manifest+json"
)

type handlers struct {
	service service
	prompts pwa.DismissalStore
	now     func() time.Time
}

func newHandlers(svc service, prompts pwa.DismissalStore, now func() time.Time) handlers {
	if now == nil {
		now = time.Now
	}
	return handlers{service: svc, prompts: prompts, now: now}
}

func (h handlers) handleManifest(w http.ResponseWriter, r *http.Request) {
	if h.service.manifestErr != nil {
		log.Printf("web: encode manifest: %v", h.service.manifestErr)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ManifestContentType)
	w.Header().Set("Cache-Control", StaticCacheControl)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(h.service.manifest)
}

// handleServiceWorker serves the worker from the site root so its scope
// covers every page. Browsers must revalidate it on each navigation.
func (h handlers) handleServiceWorker(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.serviceWorker()
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Service-Worker-Allowed", routepath.Root)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func (h handlers) staticHandler() http.Handler {
	if h.service.assets == nil {
		return http.NotFoundHandler()
	}
	files := http.StripPrefix(routepath.StaticPrefix, noDirectoryListing(http.FileServerFS(h.service.assets)))
	return httpx.Chain(files, httpx.CacheControl(StaticCacheControl))
}

func (h handlers) imagesHandler() http.Handler {
	if h.service.images == nil {
		return http.NotFoundHandler()
	}
	files := http.StripPrefix(routepath.ImagesPrefix, noDirectoryListing(http.FileServer(h.service.images)))
	return httpx.Chain(files, httpx.CacheControl(ImageCacheControl))
}

// handleDismissInstallPrompt records the dismissal. Script callers get 204;
// plain form posts return to the page they came from.
func (h handlers) handleDismissInstallPrompt(w http.ResponseWriter, r *http.Request) {
	h.prompts.Write(w, r, h.now())
	if isScriptRequest(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.WriteRedirect(w, r, returnPath(r))
}

func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isScriptRequest(r *http.Request) bool {
	if strings.TrimSpace(r.Header.Get("X-Requested-With")) != "" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// returnPath is the same-host Referer path, or the site root.
func returnPath(r *http.Request) string {
	referer := strings.TrimSpace(r.Header.Get("Referer"))
	if referer == "" {
		return routepath.Root
	}
	u, err := url.Parse(referer)
	if err != nil || !strings.EqualFold(u.Host, r.Host) || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return routepath.Root
	}
	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
