package contact

import (
	"net/http"

	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers, policy requestmeta.SchemePolicy) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.APIContact, h.handleSubmitJSON)
	mux.HandleFunc(http.MethodOptions+" "+routepath.APIContact, h.handlePreflight)
	mux.Handle(http.MethodPost+" "+routepath.LocalePattern+routepath.Contact, requestmeta.RequireSameOrigin(policy)(http.HandlerFunc(h.handleSubmitForm)))
}
