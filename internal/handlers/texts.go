package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"telegram-reminder-bot/internal/models"
	"telegram-reminder-bot/internal/session"
)

// dateInput accepts one-digit day and month
const dateInput = "2.1.2006"

// ------------- wizard -----------------------

// HandleText advances the user's reminder wizard by one step. Every call sends
// exactly one reply. Invalid input re-prompts and leaves the session as it was.
func (h *Handler) HandleText(ctx context.Context, userID int64, text string) {
	sess, err := h.sessions.Get(ctx, userID)
	if errors.Is(err, session.ErrNoSession) {
		h.sendMenu(userID, txtGuidance)
		return
	}
	if err != nil {
		h.log.Error("load session failed", "user_id", userID, "error", err)
		h.send(userID, txtInternalErr)
		return
	}

	switch sess.Step {
	case models.StepTitle:
		h.stepTitle(ctx, sess, text)
	case models.StepDescription:
		h.stepDescription(ctx, sess, text)
	case models.StepDate:
		h.stepDate(ctx, sess, text)
	case models.StepTime:
		h.stepTime(ctx, sess, text)
	default:
		h.log.Warn("session in unknown step", "user_id", userID, "step", sess.Step)
		_ = h.sessions.Delete(ctx, userID)
		h.sendMenu(userID, txtGuidance)
	}
}

// StartWizard opens a fresh session, replacing any wizard already in progress.
func (h *Handler) StartWizard(ctx context.Context, userID int64) error {
	return h.sessions.Save(ctx, &models.Session{UserID: userID, Step: models.StepTitle})
}

func (h *Handler) stepTitle(ctx context.Context, sess *models.Session, text string) {
	if text == "" {
		h.send(sess.UserID, txtTitleEmpty)
		return
	}
	if utf8.RuneCountInString(text) > models.MaxTitleLen {
		h.send(sess.UserID, txtTitleTooLong)
		return
	}
	next := *sess
	next.Title = text
	h.advance(ctx, &next, txtAskDescription)
}

func (h *Handler) stepDescription(ctx context.Context, sess *models.Session, text string) {
	if utf8.RuneCountInString(text) > models.MaxDescriptionLen {
		h.send(sess.UserID, txtDescriptionTooLong)
		return
	}
	next := *sess
	next.Description = text
	if strings.TrimSpace(text) == skipToken {
		next.Description = ""
	}
	h.advance(ctx, &next, txtAskDate)
}

func (h *Handler) stepDate(ctx context.Context, sess *models.Session, text string) {
	day, err := time.ParseInLocation(dateInput, strings.TrimSpace(text), h.loc)
	if err != nil {
		h.send(sess.UserID, txtDateFormat)
		return
	}
	if day.Before(startOfDay(h.now())) {
		h.send(sess.UserID, txtDatePast)
		return
	}
	next := *sess
	next.Date = day.Format(models.DateLayout)
	h.advance(ctx, &next, txtAskTime)
}

func (h *Handler) stepTime(ctx context.Context, sess *models.Session, text string) {
	hour, minute, ok := parseClock(strings.TrimSpace(text))
	if !ok {
		h.send(sess.UserID, txtTimeFormat)
		return
	}
	day, err := time.ParseInLocation(models.DateLayout, sess.Date, h.loc)
	if err != nil {
		// в сессии только проверенные даты
		h.log.Error("session date corrupt", "user_id", sess.UserID, "date", sess.Date, "error", err)
		h.send(sess.UserID, txtInternalErr)
		return
	}
	dueAt := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, h.loc)
	// сегодняшняя дата из сессии могла устареть после полуночи
	if !dueAt.After(h.now()) {
		h.send(sess.UserID, txtTimePast)
		return
	}

	id, err := h.db.CreateReminder(ctx, sess.UserID, sess.Title, sess.Description, dueAt)
	if err != nil {
		h.log.Error("create reminder failed", "user_id", sess.UserID, "error", err)
		h.send(sess.UserID, txtSaveFailed)
		return
	}
	h.log.Info("reminder created", "user_id", sess.UserID, "reminder_id", id, "due_at", dueAt)

	if err := h.sessions.Delete(ctx, sess.UserID); err != nil {
		h.log.Error("delete session failed", "user_id", sess.UserID, "error", err)
	}
	h.sendMenu(sess.UserID, confirmation(sess.Title, sess.Date, dueAt.Format(models.TimeLayout)))
}

// advance moves the session one step forward and sends the next prompt.
func (h *Handler) advance(ctx context.Context, next *models.Session, prompt string) {
	next.Step = next.Step.Next()
	if err := h.sessions.Save(ctx, next); err != nil {
		h.log.Error("save session failed", "user_id", next.UserID, "step", next.Step, "error", err)
		h.send(next.UserID, txtInternalErr)
		return
	}
	h.send(next.UserID, prompt)
}

// parseClock reads 24-hour H:M where both parts may have one or two digits.
func parseClock(s string) (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found || !isClockPart(hh) || !isClockPart(mm) {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(hh)
	minute, _ = strconv.Atoi(mm)
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func isClockPart(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
