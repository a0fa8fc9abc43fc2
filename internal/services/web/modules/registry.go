package modules

import (
	"github.com/kalakshetraodisha/website/internal/services/web/modules/contact"
	"github.com/kalakshetraodisha/website/internal/services/web/modules/public"
	"github.com/kalakshetraodisha/website/internal/services/web/modules/shell"
	"github.com/kalakshetraodisha/website/internal/services/web/modules/status"
)

// DefaultModules returns every module the site mounts.
func DefaultModules(deps Dependencies) []Module {
	contactOpts := []contact.Option{
		contact.WithRecorder(deps.Recorder),
		contact.WithSchemePolicy(deps.SchemePolicy),
		contact.WithLogger(deps.Logger),
	}
	if deps.Inbox != nil {
		contactOpts = append(contactOpts, contact.WithInbox(deps.Inbox))
	}
	if deps.Limiter != nil {
		contactOpts = append(contactOpts, contact.WithLimiter(deps.Limiter))
	}

	return []Module{
		public.New(deps.Content, deps.Base, public.WithAssets(deps.Assets)),
		contact.New(contactOpts...),
		shell.New(
			shell.WithImagesDir(deps.ImagesDir),
			shell.WithSchemePolicy(deps.SchemePolicy),
		),
		status.New(
			status.WithCMS(deps.CMS),
			status.WithMetrics(deps.Metrics),
		),
	}
}
