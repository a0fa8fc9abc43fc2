package storage

import (
	"context"
	"time"
)

// Submission sources.
const (
	SourceAPI  = "api"
	SourceForm = "form"
)

// Submission is one accepted contact message.
type Submission struct {
	ID        string
	Source    string
	Locale    string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// SubmissionStore persists contact submissions.
type SubmissionStore interface {
	Close() error
	PutSubmission(ctx context.Context, submission Submission) error
	GetSubmission(ctx context.Context, id string) (Submission, bool, error)
	ListSubmissions(ctx context.Context, limit int) ([]Submission, error)
}
