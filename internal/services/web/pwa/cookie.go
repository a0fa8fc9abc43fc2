package pwa

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kalakshetraodisha/website/internal/services/web/platform/requestmeta"
)

// DismissCookieName stores the last install prompt dismissal as Unix seconds.
const DismissCookieName = "ks_pwa_dismissed"

// DismissalStore persists install prompt dismissals.
type DismissalStore struct {
	Policy requestmeta.SchemePolicy
}

// DismissedAt returns the recorded dismissal time.
func (DismissalStore) DismissedAt(r *http.Request) (time.Time, bool) {
	if r == nil {
		return time.Time{}, false
	}
	cookie, err := r.Cookie(DismissCookieName)
	if err != nil {
		return time.Time{}, false
	}
	seconds, err := strconv.ParseInt(strings.TrimSpace(cookie.Value), 10, 64)
	if err != nil || seconds <= 0 {
		return time.Time{}, false
	}
	return time.Unix(seconds, 0), true
}

// Write records a dismissal at now. The cookie expires with DismissWindow.
func (s DismissalStore) Write(w http.ResponseWriter, r *http.Request, now time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     DismissCookieName,
		Value:    strconv.FormatInt(now.Unix(), 10),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, s.Policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(DismissWindow / time.Second),
	})
}

// Prompt builds the install prompt for r at now.
func (s DismissalStore) Prompt(r *http.Request, now time.Time) *InstallPrompt {
	dismissedAt, _ := s.DismissedAt(r)
	return NewInstallPrompt(dismissedAt, now, false)
}
