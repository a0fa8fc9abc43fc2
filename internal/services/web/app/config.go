package app

import (
	"log"

	module "github.com/kalakshetraodisha/website/internal/services/web/module"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/observability"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// Logger receives one line per request. Nil uses the standard logger.
	Logger *log.Logger
	// Metrics records request counts by route pattern when set.
	Metrics *observability.Metrics
}
