package models

import "time"

// Date and time layouts used for user input and display.
const (
	DateLayout = "02.01.2006"
	TimeLayout = "15:04"
)

// Input limits in characters. Together they keep a notification well under
// Telegram's 4096 character message limit.
const (
	MaxTitleLen       = 256
	MaxDescriptionLen = 1024
)

// Reminder is one scheduled notification owned by a telegram user.
type Reminder struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"` // empty -> skipped
	DueAt       time.Time `json:"due_at"`      // minute precision, bot time zone
	Sent        bool      `json:"sent"`
	CreatedAt   int64     `json:"created_at"`
}

// DueDate returns the due date as DD.MM.YYYY.
func (r *Reminder) DueDate() string { return r.DueAt.Format(DateLayout) }

// DueTime returns the due time as HH:MM.
func (r *Reminder) DueTime() string { return r.DueAt.Format(TimeLayout) }

// Session stores wizard progress for a user between "add reminder" and completion.
type Session struct {
	UserID      int64     `json:"user_id"`
	Step        Step      `json:"step"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"` // DD.MM.YYYY, already validated
	UpdatedAt   time.Time `json:"updated_at"`
}
