package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleUpdate processes one telegram update. Updates of the same user must be
// delivered sequentially, see Router.
//
// The bot works in private chats only: there the chat id equals the user id, so
// every reply and every notification goes to the owner's own chat. Updates from
// groups and channels are dropped.
func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if !isPrivate(upd) {
		h.log.Debug("non-private update dropped", "update_id", upd.UpdateID, "user_id", UserID(upd))
		return
	}
	switch {
	case upd.Message != nil:
		h.HandleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		h.HandleCallback(ctx, upd.CallbackQuery)
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID

	switch ParseCommand(msg) {
	case CommandStart:
		h.HandleStart(userID, msg.From.FirstName)
	case CommandHelp:
		h.HandleHelp(userID)
	case CommandCancel:
		h.HandleCancel(ctx, userID)
	case CommandUnknown:
		h.sendMenu(userID, txtGuidance)
	default:
		h.HandleText(ctx, userID, msg.Text)
	}
}

// UserID returns the user who sent an update, or 0 if it has none.
func UserID(upd tgbotapi.Update) int64 {
	switch {
	case upd.Message != nil && upd.Message.From != nil:
		return upd.Message.From.ID
	case upd.CallbackQuery != nil && upd.CallbackQuery.From != nil:
		return upd.CallbackQuery.From.ID
	}
	return 0
}

// isPrivate reports whether upd comes from a one-to-one chat with its sender.
// A callback on an inline message carries no chat and is accepted.
func isPrivate(upd tgbotapi.Update) bool {
	switch {
	case upd.Message != nil:
		return upd.Message.Chat != nil && upd.Message.Chat.IsPrivate()
	case upd.CallbackQuery != nil:
		cq := upd.CallbackQuery
		return cq.Message == nil || (cq.Message.Chat != nil && cq.Message.Chat.IsPrivate())
	}
	return false
}
