package status

import (
	"io"
	"log"
	"net/http"

	"github.com/kalakshetraodisha/website/internal/services/web/platform/httpx"
)

type handlers struct {
	service service
	metrics http.Handler
}

func newHandlers(svc service, metrics http.Handler) handlers {
	if metrics == nil {
		metrics = http.NotFoundHandler()
	}
	return handlers{service: svc, metrics: metrics}
}

func (h handlers) handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.WriteString(w, "OK")
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	report := h.service.report(httpx.RequestContext(r))
	if err := httpx.WriteJSON(w, http.StatusOK, report); err != nil {
		log.Printf("web: write health report: %v", err)
	}
}
