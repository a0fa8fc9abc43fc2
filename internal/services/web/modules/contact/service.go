package contact

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	apperrors "github.com/kalakshetraodisha/website/internal/services/web/platform/errors"
	webstorage "github.com/kalakshetraodisha/website/internal/services/web/storage"
)

// Outcomes recorded for every submission attempt.
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

// Request is the submitted contact form. Lengths count characters, not bytes.
type Request struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"contains=@"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"min=5"`
	Message string `json:"message" validate:"min=10"`
}

// Inbox persists accepted submissions.
type Inbox interface {
	PutSubmission(ctx context.Context, submission webstorage.Submission) error
}

// Recorder counts submission outcomes.
type Recorder interface {
	RecordContact(outcome string)
}

type service struct {
	validate *validator.Validate
	inbox    Inbox
	recorder Recorder
	logger   *log.Logger
	newID    func() string
	now      func() time.Time
}

func newService(inbox Inbox, recorder Recorder, logger *log.Logger) service {
	if logger == nil {
		logger = log.Default()
	}
	return service{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		inbox:    inbox,
		recorder: recorder,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// submit validates and accepts one submission. Invalid requests are
// rejected before anything is stored or logged as accepted.
func (s service) submit(ctx context.Context, req Request, source string, locale string) (webstorage.Submission, error) {
	if err := s.validate.Struct(req); err != nil {
		s.record(OutcomeInvalid)
		return webstorage.Submission{}, apperrors.EK(apperrors.KindInvalidInput, "contact.notice.invalid", "Invalid form data")
	}

	submission := webstorage.Submission{
		ID:        s.newID(),
		Source:    source,
		Locale:    locale,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: s.now().UTC(),
	}
	if s.inbox != nil {
		if err := s.inbox.PutSubmission(ctx, submission); err != nil {
			s.record(OutcomeFailed)
			s.logger.Printf("contact submission failed id=%s source=%s err=%v", submission.ID, source, err)
			return webstorage.Submission{}, apperrors.Wrap(apperrors.KindUnavailable, fmt.Errorf("store submission: %w", err))
		}
	}
	s.record(OutcomeAccepted)
	s.logger.Printf("contact submission accepted id=%s source=%s locale=%s subject=%q", submission.ID, source, locale, submission.Subject)
	return submission, nil
}

func (s service) record(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordContact(outcome)
	}
}
