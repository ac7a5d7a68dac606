package scheduler

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"telegram-reminder-bot/internal/messages"
	"telegram-reminder-bot/internal/models"
	"telegram-reminder-bot/internal/storage"
)

// Notifier delivers a single due reminder.
type Notifier interface {
	Dispatch(ctx context.Context, r models.Reminder) error
}

// Dispatcher sends the reminder to its owner's private chat and marks it sent only after the
// transport confirmed delivery. A crash in between can repeat a notification
// but never lose one.
type Dispatcher struct {
	bot messages.Sender
	db  storage.Repository
}

var _ Notifier = (*Dispatcher)(nil)

func NewDispatcher(bot messages.Sender, db storage.Repository) *Dispatcher {
	return &Dispatcher{bot: bot, db: db}
}

// Dispatch does not retry. An unsent reminder stays due for the next cycle.
func (d *Dispatcher) Dispatch(ctx context.Context, r models.Reminder) error {
	// личный чат пользователя совпадает с его id
	if err := d.bot.SendText(r.UserID, Notification(r)); err != nil {
		return fmt.Errorf("deliver reminder %d: %w", r.ID, err)
	}
	if err := d.db.MarkSent(ctx, r.ID); err != nil {
		return fmt.Errorf("reminder %d delivered but not marked: %w", r.ID, err)
	}
	return nil
}

// Notification renders the text delivered when a reminder becomes due.
func Notification(r models.Reminder) string {
	var b strings.Builder
	b.WriteString("🔔 <b>НАПОМИНАНИЕ</b>\n\n📌 ")
	b.WriteString(messages.Escape(truncate(r.Title, models.MaxTitleLen)))
	if r.Description != "" {
		b.WriteString("\n📄 ")
		b.WriteString(messages.Escape(truncate(r.Description, models.MaxDescriptionLen)))
	}
	return b.String()
}

// truncate обрезает s до n символов
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
