package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/kalakshetraodisha/website/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/kalakshetraodisha/website/internal/services/web/storage"
	"github.com/kalakshetraodisha/website/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// defaultListLimit bounds ListSubmissions when no limit is given.
const defaultListLimit = 50

// Store provides SQLite-backed persistence for contact submissions.
type Store struct {
	sqlDB *sql.DB
}

// OpenStore opens the inbox when a storage path is provided. An empty path
// disables persistence and returns a nil store.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create contact inbox dir: %w", err)
		}
	}
	store, err := Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open contact inbox sqlite store: %w", err)
	}
	return store, nil
}

// Open opens and migrates a contact inbox SQLite store.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSubmission inserts a submission. Ids are unique; re-inserting an id is
// an error.
func (s *Store) PutSubmission(ctx context.Context, submission webstorage.Submission) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	submission.ID = strings.TrimSpace(submission.ID)
	if submission.ID == "" {
		return fmt.Errorf("submission id is required")
	}
	submission.Source = strings.TrimSpace(submission.Source)
	if submission.Source == "" {
		return fmt.Errorf("submission source is required")
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contact_submissions (
		    id, source, locale, name, email, phone, subject, message, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		submission.ID,
		submission.Source,
		strings.TrimSpace(submission.Locale),
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Subject,
		submission.Message,
		timeToUnixMillis(submission.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put submission: %w", err)
	}
	return nil
}

// GetSubmission loads a submission by id.
func (s *Store) GetSubmission(ctx context.Context, id string) (webstorage.Submission, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Submission{}, false, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.Submission{}, false, fmt.Errorf("submission id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, source, locale, name, email, phone, subject, message, created_at
		 FROM contact_submissions
		 WHERE id = ?`,
		id,
	)
	submission, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.Submission{}, false, nil
		}
		return webstorage.Submission{}, false, fmt.Errorf("get submission: %w", err)
	}
	return submission, true, nil
}

// ListSubmissions returns the newest submissions first.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]webstorage.Submission, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, source, locale, name, email, phone, subject, message, created_at
		 FROM contact_submissions
		 ORDER BY created_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	submissions := make([]webstorage.Submission, 0)
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return submissions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (webstorage.Submission, error) {
	var submission webstorage.Submission
	var createdAt int64
	if err := row.Scan(
		&submission.ID,
		&submission.Source,
		&submission.Locale,
		&submission.Name,
		&submission.Email,
		&submission.Phone,
		&submission.Subject,
		&submission.Message,
		&createdAt,
	); err != nil {
		return webstorage.Submission{}, err
	}
	submission.CreatedAt = unixMillisToTime(createdAt)
	return submission, nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.SubmissionStore = (*Store)(nil)
