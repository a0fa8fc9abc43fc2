// Package cmd holds the startup plumbing shared by command entry points:
// env-then-flag configuration and a traced run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/config"
	"github.com/kalakshetraodisha/website/internal/platform/otel"
	"github.com/kalakshetraodisha/website/internal/platform/timeouts"
)

// ServiceWeb names the public website process in telemetry resources and logs.
const ServiceWeb = "kalakshetra-web"

// ParseConfig fills cfg from its env tags. Flags registered afterwards should
// use the loaded values as their defaults so the command line wins.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. A nil args slice parses nothing.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the tracer provider for service, runs the loop and
// flushes pending spans once it returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer flushTelemetry(service, shutdown)

	log.Printf("service=%s starting", service)
	return run(ctx)
}

func flushTelemetry(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryFlush)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("service=%s telemetry flush: %v", service, err)
	}
}
