package handlers

import (
	"context"
	"errors"

	"telegram-reminder-bot/internal/session"
)

// ---------------- /start --------------------
func (h *Handler) HandleStart(userID int64, firstName string) {
	h.sendMenu(userID, greeting(firstName))
}

// ---------------- /help ---------------------
func (h *Handler) HandleHelp(userID int64) {
	h.sendMenu(userID, txtHelp)
}

// ---------------- /cancel -------------------
func (h *Handler) HandleCancel(ctx context.Context, userID int64) {
	_, err := h.sessions.Get(ctx, userID)
	if errors.Is(err, session.ErrNoSession) {
		h.sendMenu(userID, txtNothing)
		return
	}
	if err == nil {
		err = h.sessions.Delete(ctx, userID)
	}
	if err != nil {
		h.log.Error("cancel session failed", "user_id", userID, "error", err)
		h.send(userID, txtInternalErr)
		return
	}
	h.sendMenu(userID, txtCancelled)
}
