package handlers

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-reminder-bot/internal/messages"
	"telegram-reminder-bot/internal/storage"
)

// ------------- callbacks ------------------
func (h *Handler) HandleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil {
		return
	}
	userID := cq.From.ID
	messageID := 0
	if cq.Message != nil {
		messageID = cq.Message.MessageID
	}
	action := ParseAction(cq.Data)

	toast := ""
	switch action.Kind {
	case ActionAdd:
		h.handleAdd(ctx, userID, messageID)
	case ActionList:
		h.handleList(ctx, userID, messageID, txtListEmpty)
	case ActionHelp:
		h.render(userID, messageID, txtHelp, mainMenu())
	case ActionMenu:
		h.render(userID, messageID, txtMenu, mainMenu())
	case ActionView:
		toast = h.handleView(ctx, userID, messageID, action.ReminderID)
	case ActionDelete:
		toast = h.handleDelete(ctx, userID, messageID, action.ReminderID)
	default:
		h.log.Debug("unknown callback data", "user_id", userID, "data", cq.Data)
	}

	// всегда отвечаем на callback, иначе у кнопки висят «часики»
	if err := h.bot.AnswerCallback(cq.ID, toast); err != nil {
		h.log.Warn("answer callback failed", "user_id", userID, "error", err)
	}
}

func (h *Handler) handleAdd(ctx context.Context, userID int64, messageID int) {
	if err := h.StartWizard(ctx, userID); err != nil {
		h.log.Error("start wizard failed", "user_id", userID, "error", err)
		h.send(userID, txtInternalErr)
		return
	}
	h.render(userID, messageID, txtAskTitle, nil)
}

func (h *Handler) handleList(ctx context.Context, userID int64, messageID int, emptyText string) {
	reminders, err := h.db.ListReminders(ctx, userID)
	if err != nil {
		h.log.Error("list reminders failed", "user_id", userID, "error", err)
		h.send(userID, txtInternalErr)
		return
	}
	if len(reminders) == 0 {
		h.render(userID, messageID, emptyText, mainMenu())
		return
	}
	h.render(userID, messageID, txtListHeader, reminderList(reminders))
}

func (h *Handler) handleView(ctx context.Context, userID int64, messageID int, id int64) string {
	r, err := h.db.GetReminder(ctx, id, userID)
	if errors.Is(err, storage.ErrNotFound) {
		h.handleList(ctx, userID, messageID, txtListEmpty)
		return txtNotFound
	}
	if err != nil {
		h.log.Error("get reminder failed", "user_id", userID, "reminder_id", id, "error", err)
		h.send(userID, txtInternalErr)
		return ""
	}
	h.render(userID, messageID, reminderDetails(r), reminderActions(r.ID))
	return ""
}

func (h *Handler) handleDelete(ctx context.Context, userID int64, messageID int, id int64) string {
	if err := h.db.DeleteReminder(ctx, id, userID); err != nil {
		h.log.Error("delete reminder failed", "user_id", userID, "reminder_id", id, "error", err)
		h.send(userID, txtInternalErr)
		return ""
	}
	h.log.Info("reminder deleted", "user_id", userID, "reminder_id", id)
	h.handleList(ctx, userID, messageID, txtListGone)
	return txtDeleted
}

// render edits the tapped message in place, or sends a new one when there is none.
func (h *Handler) render(userID int64, messageID int, text string, rows [][]messages.Button) {
	if messageID == 0 {
		if err := h.bot.SendWithOptions(userID, text, rows); err != nil {
			h.log.Warn("send message failed", "user_id", userID, "error", err)
		}
		return
	}
	h.edit(userID, messageID, text, rows)
}
