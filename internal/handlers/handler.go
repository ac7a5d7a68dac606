package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"telegram-reminder-bot/internal/messages"
	"telegram-reminder-bot/internal/session"
	"telegram-reminder-bot/internal/storage"
)

// Config holds the collaborators of a Handler.
type Config struct {
	Sender   messages.Sender
	Store    storage.Repository
	Sessions session.Store
	// Location is the zone user dates and times are read in. Defaults to UTC.
	Location *time.Location
	Clock    clockwork.Clock
	Logger   *slog.Logger
}

// Handler reacts to commands, button taps and wizard replies.
type Handler struct {
	bot      messages.Sender
	db       storage.Repository
	sessions session.Store
	loc      *time.Location
	clock    clockwork.Clock
	log      *slog.Logger
}

func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}

	h := &Handler{
		bot:      cfg.Sender,
		db:       cfg.Store,
		sessions: cfg.Sessions,
		loc:      cfg.Location,
		clock:    cfg.Clock,
		log:      cfg.Logger,
	}
	if h.loc == nil {
		h.loc = time.UTC
	}
	if h.clock == nil {
		h.clock = clockwork.NewRealClock()
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	return h, nil
}

// now returns the current wall clock in the bot zone.
func (h *Handler) now() time.Time {
	return h.clock.Now().In(h.loc)
}

func (h *Handler) send(userID int64, text string) {
	if err := h.bot.SendText(userID, text); err != nil {
		h.log.Warn("send message failed", "user_id", userID, "error", err)
	}
}

func (h *Handler) sendMenu(userID int64, text string) {
	if err := h.bot.SendWithOptions(userID, text, mainMenu()); err != nil {
		h.log.Warn("send menu failed", "user_id", userID, "error", err)
	}
}

func (h *Handler) edit(userID int64, messageID int, text string, rows [][]messages.Button) {
	if err := h.bot.EditWithOptions(userID, messageID, text, rows); err != nil {
		h.log.Warn("edit message failed", "user_id", userID, "message_id", messageID, "error", err)
	}
}
