package public

import (
	"context"

	"github.com/kalakshetraodisha/website/internal/services/web/content"
)

// ContentService is the content surface the public pages read.
type ContentService interface {
	Programs(ctx context.Context, locale string) []content.Program
	Program(ctx context.Context, locale string, slug string) (content.ProgramDetail, bool)
	ProgramSlugs(ctx context.Context, locale string) []string
	Gallery(ctx context.Context, locale string) content.Gallery
	Leadership(ctx context.Context, locale string) content.Leadership
	Press(ctx context.Context, locale string) content.Press
	Awards(ctx context.Context, locale string) []content.Award
	Events(ctx context.Context, locale string) content.Events
}

var _ ContentService = (*content.Service)(nil)
