// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/kalakshetraodisha/website/internal/services/web/platform/errors"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/pagerender"
	webtemplates "github.com/kalakshetraodisha/website/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page inside the site layout.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, page *webtemplates.PageContext) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	if page == nil {
		page = &webtemplates.PageContext{}
	}
	page.Title = webtemplates.ErrorPageTitle(statusCode, page.Loc)
	page.Canonical = ""
	page.Alternates = nil
	pagerender.MustWritePage(w, r, pagerender.Page{
		Context:    page,
		StatusCode: statusCode,
		Body:       webtemplates.Error(page, statusCode),
	})
}

// WriteModuleError writes a user-safe error response: error pages for
// not-found and server errors, plain-text status messages for everything else.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, page *webtemplates.PageContext) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, page)
		return
	}
	var loc webtemplates.Localizer
	if page != nil {
		loc = page.Loc
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
