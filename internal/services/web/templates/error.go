package templates

import "net/http"

const (
	errorNotFoundTitleKey    = "errors.not_found.title"
	errorNotFoundBodyKey     = "errors.not_found.body"
	errorUnavailableTitleKey = "errors.unavailable.title"
	errorUnavailableBodyKey  = "errors.unavailable.body"
	errorGenericTitleKey     = "errors.generic.title"
	errorGenericBodyKey      = "errors.generic.body"
)

// ErrorView is the body of an error page.
type ErrorView struct {
	Status   int
	TitleKey string
	BodyKey  string
}

// ErrorViewFor returns the error page copy for a status code. Statuses
// without dedicated copy use the generic server error text.
func ErrorViewFor(statusCode int) ErrorView {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return ErrorView{Status: http.StatusNotFound, TitleKey: errorNotFoundTitleKey, BodyKey: errorNotFoundBodyKey}
	case http.StatusServiceUnavailable:
		return ErrorView{Status: http.StatusServiceUnavailable, TitleKey: errorUnavailableTitleKey, BodyKey: errorUnavailableBodyKey}
	default:
		return ErrorView{Status: http.StatusInternalServerError, TitleKey: errorGenericTitleKey, BodyKey: errorGenericBodyKey}
	}
}

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, ErrorViewFor(statusCode).TitleKey)
}

func normalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}
