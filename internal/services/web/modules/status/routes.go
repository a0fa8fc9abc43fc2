package status

import (
	"net/http"

	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleLiveness)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIHealth, h.handleHealth)
	mux.Handle(http.MethodGet+" "+routepath.Metrics, h.metrics)
}
