package status

import (
	"context"
	"time"
)

// CMS availability values reported by the health endpoint.
const (
	CMSAvailable   = "available"
	CMSUnavailable = "unavailable"
	CMSDisabled    = "disabled"
)

// StatusOK is reported while the site can serve pages. Pages fall back to
// bundled content, so an unavailable CMS does not change it.
const StatusOK = "ok"

// CMSProbe reports whether the content service is configured and reachable.
type CMSProbe interface {
	Enabled() bool
	Available(ctx context.Context) bool
}

// Report is the health document.
type Report struct {
	Status    string `json:"status"`
	CMS       string `json:"cms"`
	Timestamp string `json:"timestamp"`
}

type service struct {
	cms CMSProbe
	now func() time.Time
}

func newService(cms CMSProbe, now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{cms: cms, now: now}
}

func (s service) report(ctx context.Context) Report {
	return Report{
		Status:    StatusOK,
		CMS:       s.cmsState(ctx),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}

func (s service) cmsState(ctx context.Context) string {
	switch {
	case s.cms == nil || !s.cms.Enabled():
		return CMSDisabled
	case s.cms.Available(ctx):
		return CMSAvailable
	default:
		return CMSUnavailable
	}
}
