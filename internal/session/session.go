// Package session keeps in-progress reminder wizards, one per user.
package session

import (
	"context"
	"errors"

	"telegram-reminder-bot/internal/models"
)

// ErrNoSession is returned by Get when the user has no active wizard.
var ErrNoSession = errors.New("no active session")

// Store maps a user id to its wizard progress.
type Store interface {
	Get(ctx context.Context, userID int64) (*models.Session, error)
	// Save replaces any session the user already holds.
	Save(ctx context.Context, s *models.Session) error
	// Delete is a no-op when the user has no session.
	Delete(ctx context.Context, userID int64) error
}
