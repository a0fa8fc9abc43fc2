// Package timeouts defines shared timeout constants used across the site.
// Centralizing these values keeps the CMS budgets and server limits in one
// discoverable place.
package timeouts

import "time"

// CMSRequest caps a single content fetch from the CMS. A fetch that exceeds
// it is treated as absent content.
const CMSRequest = 5 * time.Second

// CMSProbe caps the CMS availability check.
const CMSProbe = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// RateLimiterIdle is how long a per-client limiter may sit unused before it
// is evicted.
const RateLimiterIdle = 10 * time.Minute

// TelemetryFlush bounds the final span export when a process exits.
const TelemetryFlush = 5 * time.Second
