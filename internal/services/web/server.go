package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/assets/imagecdn"
	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	"github.com/kalakshetraodisha/website/internal/platform/timeouts"
	"github.com/kalakshetraodisha/website/internal/services/web/app"
	"github.com/kalakshetraodisha/website/internal/services/web/content"
	"github.com/kalakshetraodisha/website/internal/services/web/integration/cms"
	"github.com/kalakshetraodisha/website/internal/services/web/modules"
	"github.com/kalakshetraodisha/website/internal/services/web/modules/contact"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/observability"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/publichandler"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
	"github.com/kalakshetraodisha/website/internal/services/web/site"
	"github.com/kalakshetraodisha/website/internal/services/web/storage/sqlite"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// CMSURL is the content service origin. Empty serves bundled content only.
	CMSURL   string
	CMSToken string
	// SiteURL is the public origin used for canonical links and the sitemap.
	SiteURL string
	// AssetBaseURL serves numbered photographs from a CDN instead of /images.
	AssetBaseURL string
	// ImagesDir holds the numbered photographs served under /images/.
	ImagesDir string
	// ContactDBPath enables the SQLite contact inbox.
	ContactDBPath string
	// ContactRate is the sustained submissions per second per client.
	ContactRate  float64
	ContactBurst int
	// TrustForwardedProto honors X-Forwarded-Proto behind a proxy.
	TrustForwardedProto bool
	Logger              *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	inbox      *sqlite.Store
	cms        *cms.Client
	logger     *log.Logger
}

// NewServer validates config and constructs a web server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	data, err := content.EmbeddedData()
	if err != nil {
		return nil, fmt.Errorf("load fallback content: %w", err)
	}
	assets := imagecdn.New(cfg.AssetBaseURL)
	if err := checkImageSource(cfg.ImagesDir, assets, logger); err != nil {
		return nil, err
	}
	inbox, err := sqlite.OpenStore(ctx, cfg.ContactDBPath)
	if err != nil {
		return nil, fmt.Errorf("open contact inbox: %w", err)
	}

	metrics := observability.NewMetrics()
	client := cms.NewClient(cms.Config{
		BaseURL:       cfg.CMSURL,
		Token:         cfg.CMSToken,
		DefaultLocale: platformi18n.Default().Code,
		Logger:        logger,
		Observer:      metrics,
		Assets:        assets,
	})
	service := content.NewService(client, data)
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}

	deps := modules.Dependencies{
		Content: service,
		Assets:  assets,
		Base: publichandler.NewBase(
			publichandler.WithSettings(service),
			publichandler.WithSite(site.New(cfg.SiteURL)),
			publichandler.WithSchemePolicy(policy),
		),
		Recorder:     metrics,
		Logger:       logger,
		ImagesDir:    cfg.ImagesDir,
		CMS:          client,
		Metrics:      metrics.Handler(),
		SchemePolicy: policy,
	}
	if inbox != nil {
		deps.Inbox = inbox
	}
	if cfg.ContactRate > 0 && cfg.ContactBurst > 0 {
		deps.Limiter = contact.NewLimiter(rate.Limit(cfg.ContactRate), cfg.ContactBurst)
	}

	handler, err := app.BuildRootHandler(app.Config{
		Modules: modules.DefaultModules(deps),
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		if inbox != nil {
			_ = inbox.Close()
		}
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		inbox:  inbox,
		cms:    client,
		logger: logger,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe serves HTTP traffic until context cancellation or server
// stop. On cancellation it performs a bounded shutdown so in-flight
// requests drain before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	cmsState := "disabled"
	if s.cms.Enabled() {
		cmsState = s.cms.BaseURL()
	}
	s.logger.Printf("web listening on %s cms=%s inbox=%t", s.httpAddr, cmsState, s.inbox != nil)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Close releases the contact inbox.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.inbox != nil {
		if err := s.inbox.Close(); err != nil {
			s.logger.Printf("close contact inbox: %v", err)
		}
	}
}
