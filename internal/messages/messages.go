package messages

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Button is one inline choice: the visible label and the opaque token sent back on tap.
type Button struct {
	Text string
	Data string
}

// Sender is the outbound half of the messaging transport.
// Every method reports delivery failure as an error and never panics.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go telegram-reminder-bot/internal/messages Sender
type Sender interface {
	SendText(chatID int64, text string) error
	SendWithOptions(chatID int64, text string, rows [][]Button) error
	// EditWithOptions replaces the text and buttons of an already sent message.
	EditWithOptions(chatID int64, messageID int, text string, rows [][]Button) error
	AnswerCallback(callbackID, text string) error
}

// Bot sends HTML-formatted messages through the Telegram Bot API.
type Bot struct {
	api *tgbotapi.BotAPI
}

var _ Sender = (*Bot)(nil)

func NewBot(api *tgbotapi.BotAPI) *Bot {
	return &Bot{api: api}
}

// Escape makes user supplied text safe inside an HTML message.
func Escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func (b *Bot) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}

func (b *Bot) SendWithOptions(chatID int64, text string, rows [][]Button) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(rows) > 0 {
		msg.ReplyMarkup = Keyboard(rows)
	}
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}

func (b *Bot) EditWithOptions(chatID int64, messageID int, text string, rows [][]Button) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, Keyboard(rows))
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Request(edit); err != nil {
		if isNotModified(err) {
			return nil
		}
		return fmt.Errorf("edit message %d in %d: %w", messageID, chatID, err)
	}
	return nil
}

func (b *Bot) AnswerCallback(callbackID, text string) error {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("answer callback %s: %w", callbackID, err)
	}
	return nil
}

// Keyboard converts button rows to telegram inline markup.
func Keyboard(rows [][]Button) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		kb = append(kb, tgbotapi.NewInlineKeyboardRow(btns...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}

// telegram rejects edits that would not change the message
func isNotModified(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return strings.Contains(apiErr.Message, "message is not modified")
	}
	return false
}
