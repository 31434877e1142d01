// Package contact records contact form submissions. Delivery is best effort:
// callers are expected to log a recording error and carry on.
package contact

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"

	applog "moodquote/internal/log"
	"moodquote/models"
)

// Submission is a single contact form entry.
type Submission struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Message    string
	ReceivedAt time.Time
}

// NewSubmission trims the fields and stamps a fresh ID and receive time.
func NewSubmission(name, email, message string) Submission {
	return Submission{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Message:    strings.TrimSpace(message),
		ReceivedAt: time.Now().UTC(),
	}
}

// Missing lists the names of the empty fields.
func (s Submission) Missing() []string {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Email == "" {
		missing = append(missing, "email")
	}
	if s.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}

// Recorder stores or forwards a submission.
type Recorder interface {
	Record(ctx context.Context, s Submission) error
}

// LogRecorder writes each submission as a structured log line.
type LogRecorder struct {
	// APIKey is the email-service credential. Only its fingerprint is logged.
	APIKey string
}

// Record implements Recorder.
func (l LogRecorder) Record(ctx context.Context, s Submission) error {
	applog.Info(ctx, "contact message received",
		"id", s.ID.String(),
		"name", s.Name,
		"email", s.Email,
		"message", s.Message,
		"apiKey", Fingerprint(l.APIKey),
	)
	return nil
}

// Fingerprint returns a short blake2b digest of secret, or "unset" when blank.
func Fingerprint(secret string) string {
	if strings.TrimSpace(secret) == "" {
		return "unset"
	}
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:6])
}

// DBRecorder inserts submissions into the contact inbox.
type DBRecorder struct {
	DB *gorm.DB
}

// Record implements Recorder.
func (d DBRecorder) Record(ctx context.Context, s Submission) error {
	if d.DB == nil {
		return gorm.ErrInvalidDB
	}
	row := models.ContactMessage{
		Reference:  s.ID.String(),
		Name:       s.Name,
		Email:      s.Email,
		Message:    s.Message,
		ReceivedAt: s.ReceivedAt,
	}
	return d.DB.WithContext(ctx).Create(&row).Error
}

// Multi records to every recorder and joins their errors.
type Multi []Recorder

// Record implements Recorder.
func (m Multi) Record(ctx context.Context, s Submission) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Record(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
