// Package web parses web command flags and launches the public website.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/kalakshetraodisha/website/internal/platform/cmd"
	"github.com/kalakshetraodisha/website/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string  `env:"KALAKSHETRA_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	CMSURL              string  `env:"KALAKSHETRA_WEB_CMS_URL" envDefault:"http://localhost:1337"`
	CMSToken            string  `env:"KALAKSHETRA_WEB_CMS_TOKEN"`
	SiteURL             string  `env:"KALAKSHETRA_WEB_SITE_URL" envDefault:"https://kalakshetraodisha.com"`
	AssetBaseURL        string  `env:"KALAKSHETRA_WEB_ASSET_BASE_URL"`
	ImagesDir           string  `env:"KALAKSHETRA_WEB_IMAGES_DIR"`
	ContactDBPath       string  `env:"KALAKSHETRA_WEB_CONTACT_DB_PATH"`
	ContactRate         float64 `env:"KALAKSHETRA_WEB_CONTACT_RATE"`
	ContactBurst        int     `env:"KALAKSHETRA_WEB_CONTACT_BURST"`
	TrustForwardedProto bool    `env:"KALAKSHETRA_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CMSURL, "cms-url", cfg.CMSURL, "CMS base URL; empty serves bundled content only")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public site URL used for canonical links")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "CDN base URL for site photographs")
	fs.StringVar(&cfg.ImagesDir, "images-dir", cfg.ImagesDir, "Directory served under /images/")
	fs.StringVar(&cfg.ContactDBPath, "contact-db-path", cfg.ContactDBPath, "SQLite path for the contact inbox")
	fs.Float64Var(&cfg.ContactRate, "contact-rate", cfg.ContactRate, "Contact submissions per second per client")
	fs.IntVar(&cfg.ContactBurst, "contact-burst", cfg.ContactBurst, "Contact submission burst per client")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			CMSURL:              cfg.CMSURL,
			CMSToken:            cfg.CMSToken,
			SiteURL:             cfg.SiteURL,
			AssetBaseURL:        cfg.AssetBaseURL,
			ImagesDir:           cfg.ImagesDir,
			ContactDBPath:       cfg.ContactDBPath,
			ContactRate:         cfg.ContactRate,
			ContactBurst:        cfg.ContactBurst,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
