package shell

import (
	"net/http"

	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers, policy requestmeta.SchemePolicy) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Manifest, h.handleManifest)
	mux.HandleFunc(http.MethodGet+" "+routepath.ServiceWorker, h.handleServiceWorker)
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, h.staticHandler())
	mux.Handle(http.MethodGet+" "+routepath.ImagesPrefix, h.imagesHandler())
	mux.Handle(http.MethodPost+" "+routepath.InstallPromptDismiss, requestmeta.RequireSameOrigin(policy)(http.HandlerFunc(h.handleDismissInstallPrompt)))
}
