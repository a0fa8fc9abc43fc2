// Package modules defines web module registry helpers.
package modules

import (
	"log"
	"net/http"

	"github.com/kalakshetraodisha/website/internal/platform/assets/imagecdn"
	module "github.com/kalakshetraodisha/website/internal/services/web/module"
	"github.com/kalakshetraodisha/website/internal/services/web/modules/contact"
	"github.com/kalakshetraodisha/website/internal/services/web/modules/public"
	"github.com/kalakshetraodisha/website/internal/services/web/modules/status"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/publichandler"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the services and shared config required to compose
// the web module registry. Each field is typed as the narrow interface the
// consuming module declares, so modules cannot reach collaborators they
// were not given.
type Dependencies struct {
	// Public page module.
	Content public.ContentService
	Base    publichandler.Base
	Assets  imagecdn.CDN

	// Contact module. A nil Inbox skips persistence.
	Inbox    contact.Inbox
	Recorder contact.Recorder
	Limiter  *contact.Limiter
	Logger   *log.Logger

	// Shell module.
	ImagesDir string

	// Status module.
	CMS     status.CMSProbe
	Metrics http.Handler

	SchemePolicy requestmeta.SchemePolicy
}
