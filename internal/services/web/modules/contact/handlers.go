package contact

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	platformi18n "github.com/kalakshetraodisha/website/internal/platform/i18n"
	sharedi18n "github.com/kalakshetraodisha/website/internal/services/shared/i18nhttp"
	apperrors "github.com/kalakshetraodisha/website/internal/services/web/platform/errors"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/flash"
	"github.com/kalakshetraodisha/website/internal/services/web/platform/httpx"
	"github.com/kalakshetraodisha/website/internal/services/web/routepath"
	webstorage "github.com/kalakshetraodisha/website/internal/services/web/storage"
)

// Response bodies of the JSON endpoint.
const (
	MessageAccepted    = "Thank you for your message. We will get back to you soon!"
	MessageInvalid     = "Invalid form data"
	MessageFailed      = "Failed to process your request. Please try again."
	MessageRateLimited = "Too many requests. Please try again later."
)

// maxBodyBytes bounds a submission body.
const maxBodyBytes = 64 << 10

type handlers struct {
	service service
	limiter *Limiter
	flash   flash.Store
}

type acceptedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newHandlers(service service, limiter *Limiter, store flash.Store) handlers {
	return handlers{service: service, limiter: limiter, flash: store}
}

func (h handlers) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Access-Control-Max-Age", "86400")
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleSubmitJSON(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	if !h.allow(w, r) {
		_ = httpx.WriteJSONError(w, http.StatusTooManyRequests, MessageRateLimited)
		return
	}

	var req Request
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		h.service.record(OutcomeInvalid)
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, MessageInvalid)
		return
	}

	tag, _ := sharedi18n.ResolveTag(r)
	if _, err := h.service.submit(r.Context(), req, webstorage.SourceAPI, platformi18n.LocaleForTag(tag).Code); err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			_ = httpx.WriteJSONError(w, http.StatusBadRequest, MessageInvalid)
			return
		}
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, MessageFailed)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, acceptedResponse{Success: true, Message: MessageAccepted})
}

// handleSubmitForm accepts the no-script form post and redirects back to the
// contact page with a notice.
func (h handlers) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue(routepath.LocaleParam)
	locale, ok := platformi18n.Lookup(code)
	if !ok || locale.Code != code {
		http.NotFound(w, r)
		return
	}
	back := routepath.Localized(locale.Code, routepath.Contact)

	if !h.allow(w, r) {
		h.flash.Write(w, r, flash.NoticeError("contact.notice.limited"))
		httpx.WriteRedirect(w, r, back)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.service.record(OutcomeInvalid)
		h.flash.Write(w, r, flash.NoticeError("contact.notice.invalid"))
		httpx.WriteRedirect(w, r, back)
		return
	}
	req := Request{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}
	if _, err := h.service.submit(r.Context(), req, webstorage.SourceForm, locale.Code); err != nil {
		key := "contact.notice.failed"
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			key = apperrors.LocalizationKey(err)
		}
		h.flash.Write(w, r, flash.NoticeError(key))
		httpx.WriteRedirect(w, r, back)
		return
	}
	h.flash.Write(w, r, flash.NoticeSuccess("contact.notice.sent"))
	httpx.WriteRedirect(w, r, back)
}

// allow applies the per-client budget, setting Retry-After when exhausted.
func (h handlers) allow(w http.ResponseWriter, r *http.Request) bool {
	ok, wait := h.limiter.Allow(httpx.ClientIP(r))
	if ok {
		return true
	}
	h.service.record(OutcomeRateLimited)
	w.Header().Set("Retry-After", retryAfterSeconds(wait))
	return false
}

func setCORSHeaders(w http.ResponseWriter) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", strings.Join([]string{http.MethodPost, http.MethodOptions}, ", "))
	header.Set("Access-Control-Allow-Headers", "Content-Type")
}

func retryAfterSeconds(wait time.Duration) string {
	seconds := int(math.Ceil(wait.Seconds()))
	return strconv.Itoa(max(seconds, 1))
}
