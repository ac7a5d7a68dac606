package handlers

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ActionKind enumerates the inline button actions.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionAdd
	ActionList
	ActionHelp
	ActionMenu
	ActionView
	ActionDelete
)

const (
	dataAdd        = "add_reminder"
	dataList       = "my_reminders"
	dataHelp       = "help"
	dataMenu       = "back_to_menu"
	dataViewPrefix = "view_reminder_"
	dataDelPrefix  = "delete_reminder_"
)

// Action is a decoded callback token. ReminderID is set for view and delete only.
type Action struct {
	Kind       ActionKind
	ReminderID int64
}

// ParseAction decodes callback data once at the transport boundary.
func ParseAction(data string) Action {
	switch data {
	case dataAdd:
		return Action{Kind: ActionAdd}
	case dataList:
		return Action{Kind: ActionList}
	case dataHelp:
		return Action{Kind: ActionHelp}
	case dataMenu:
		return Action{Kind: ActionMenu}
	}

	if rest, ok := strings.CutPrefix(data, dataViewPrefix); ok {
		if id, err := strconv.ParseInt(rest, 10, 64); err == nil && id > 0 {
			return Action{Kind: ActionView, ReminderID: id}
		}
	}
	if rest, ok := strings.CutPrefix(data, dataDelPrefix); ok {
		if id, err := strconv.ParseInt(rest, 10, 64); err == nil && id > 0 {
			return Action{Kind: ActionDelete, ReminderID: id}
		}
	}
	return Action{Kind: ActionUnknown}
}

// Data encodes the action as callback data.
func (a Action) Data() string {
	switch a.Kind {
	case ActionAdd:
		return dataAdd
	case ActionList:
		return dataList
	case ActionHelp:
		return dataHelp
	case ActionMenu:
		return dataMenu
	case ActionView:
		return dataViewPrefix + strconv.FormatInt(a.ReminderID, 10)
	case ActionDelete:
		return dataDelPrefix + strconv.FormatInt(a.ReminderID, 10)
	default:
		return ""
	}
}

// CommandKind enumerates what an inbound text message means.
type CommandKind int

const (
	CommandText CommandKind = iota // free text, routed to the wizard
	CommandStart
	CommandHelp
	CommandCancel
	CommandUnknown
)

// ParseCommand classifies an inbound message.
func ParseCommand(msg *tgbotapi.Message) CommandKind {
	if !msg.IsCommand() {
		return CommandText
	}
	switch msg.Command() {
	case "start":
		return CommandStart
	case "help":
		return CommandHelp
	case "cancel":
		return CommandCancel
	default:
		return CommandUnknown
	}
}
