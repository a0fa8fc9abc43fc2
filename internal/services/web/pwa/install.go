package pwa

import (
	"time"
)

const (
	// PromptDelay is how long an installable page waits before offering
	// installation.
	PromptDelay = 30 * time.Second
	// DismissWindow suppresses the prompt after a dismissal.
	DismissWindow = 7 * 24 * time.Hour
)

// PromptState is the install prompt state.
type PromptState int

const (
	PromptHidden PromptState = iota
	PromptWaiting
	PromptShown
	PromptDismissed
	PromptInstalled
)

var promptStateNames = [...]string{"hidden", "waiting", "shown", "dismissed", "installed"}

func (s PromptState) String() string {
	if s < 0 || int(s) >= len(promptStateNames) {
		return "unknown"
	}
	return promptStateNames[s]
}

// PromptEvent drives the install prompt.
type PromptEvent int

const (
	// EventInstallable fires when the browser offers installation.
	EventInstallable PromptEvent = iota
	// EventDelayElapsed fires PromptDelay after EventInstallable.
	EventDelayElapsed
	// EventDismiss fires when the visitor declines.
	EventDismiss
	// EventAccept fires when the visitor accepts the browser prompt.
	EventAccept
	// EventInstalled fires when the app is installed or runs standalone.
	EventInstalled
)

var promptEventNames = [...]string{"installable", "delay_elapsed", "dismiss", "accept", "installed"}

func (e PromptEvent) String() string {
	if e < 0 || int(e) >= len(promptEventNames) {
		return "unknown"
	}
	return promptEventNames[e]
}

// InstallPrompt is the install banner state machine.
type InstallPrompt struct {
	state       PromptState
	dismissedAt time.Time
}

// NewInstallPrompt starts the machine from persisted facts. A dismissal
// within DismissWindow of now starts it dismissed; a standalone display
// starts it installed.
func NewInstallPrompt(dismissedAt time.Time, now time.Time, standalone bool) *InstallPrompt {
	p := &InstallPrompt{state: PromptHidden, dismissedAt: dismissedAt}
	switch {
	case standalone:
		p.state = PromptInstalled
	case Suppressed(dismissedAt, now):
		p.state = PromptDismissed
	}
	return p
}

// Suppressed reports whether a dismissal at dismissedAt still hides the
// prompt at now.
func Suppressed(dismissedAt time.Time, now time.Time) bool {
	if dismissedAt.IsZero() || dismissedAt.After(now) {
		return false
	}
	return now.Sub(dismissedAt) < DismissWindow
}

// State returns the current state.
func (p *InstallPrompt) State() PromptState {
	return p.state
}

// DismissedAt returns the last dismissal time.
func (p *InstallPrompt) DismissedAt() time.Time {
	return p.dismissedAt
}

// Renderable reports whether the banner markup belongs on the page.
func (p *InstallPrompt) Renderable() bool {
	return p.state != PromptDismissed && p.state != PromptInstalled
}

// Visible reports whether the banner is on screen.
func (p *InstallPrompt) Visible() bool {
	return p.state == PromptShown
}

// Handle applies event at now and reports whether the state changed.
func (p *InstallPrompt) Handle(event PromptEvent, now time.Time) bool {
	next := p.state
	switch event {
	case EventInstalled:
		next = PromptInstalled
	case EventInstallable:
		if p.state == PromptHidden {
			next = PromptWaiting
		}
	case EventDelayElapsed:
		if p.state == PromptWaiting {
			next = PromptShown
		}
	case EventDismiss:
		if p.state == PromptShown || p.state == PromptWaiting {
			next = PromptDismissed
			p.dismissedAt = now
		}
	case EventAccept:
		if p.state == PromptShown {
			next = PromptInstalled
		}
	}
	changed := next != p.state
	p.state = next
	return changed
}
