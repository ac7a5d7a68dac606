package storage

import (
	"context"
	"errors"
	"time"

	"telegram-reminder-bot/internal/models"
)

// ErrNotFound is returned when a reminder does not exist or belongs to another user.
var ErrNotFound = errors.New("reminder not found")

// Repository is the reminder store shared by the wizard and the scheduler.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go telegram-reminder-bot/internal/storage Repository
type Repository interface {
	// CreateReminder stores a new unsent reminder and returns its id.
	CreateReminder(ctx context.Context, userID int64, title, description string, dueAt time.Time) (int64, error)

	// ListReminders returns the user's reminders in insertion order.
	ListReminders(ctx context.Context, userID int64) ([]models.Reminder, error)

	// GetReminder returns ErrNotFound for ids owned by other users.
	GetReminder(ctx context.Context, id, userID int64) (*models.Reminder, error)

	// DeleteReminder is a no-op when the id is missing or not owned by userID.
	DeleteReminder(ctx context.Context, id, userID int64) error

	// ListDueUnsent returns unsent reminders due at or before asOf.
	ListDueUnsent(ctx context.Context, asOf time.Time) ([]models.Reminder, error)

	// MarkSent is idempotent.
	MarkSent(ctx context.Context, id int64) error
}
