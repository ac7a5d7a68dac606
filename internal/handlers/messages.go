package handlers

import (
	"fmt"
	"strings"

	"telegram-reminder-bot/internal/messages"
	"telegram-reminder-bot/internal/models"
)

// skipToken stores an empty description.
const skipToken = "-"

const (
	btnAdd    = "➕ Добавить напоминание"
	btnList   = "📋 Мои напоминания"
	btnHelp   = "❓ Помощь"
	btnBack   = "🔙 Назад"
	btnDelete = "🗑 Удалить"
)

const txtHelp = "🤖 <b>Как пользоваться ботом:</b>\n\n" +
	"➕ <b>Добавить напоминание</b> - создать новое напоминание\n" +
	"📋 <b>Мои напоминания</b> - посмотреть все напоминания\n" +
	"❓ <b>Помощь</b> - показать это сообщение\n\n" +
	"<b>Формат даты:</b> ДД.ММ.ГГГГ (например: 25.12.2024)\n" +
	"<b>Формат времени:</b> ЧЧ:ММ (например: 14:30)\n\n" +
	"/cancel - отменить создание напоминания\n\n" +
	"Бот пришлёт напоминание в указанное время!"

const (
	txtMenu      = "🏠 Главное меню\n\nВыберите действие:"
	txtGuidance  = "Пожалуйста, используйте команду /start для начала работы."
	txtCancelled = "Создание напоминания отменено."
	txtNothing   = "Нечего отменять."

	txtAskTitle       = "📝 Напишите название напоминания:"
	txtAskDescription = "📝 Теперь напишите описание напоминания (или отправьте '" + skipToken + "' чтобы пропустить):"
	txtAskDate        = "📅 Введите дату напоминания в формате ДД.ММ.ГГГГ (например: 25.12.2024):"
	txtAskTime        = "⏰ Введите время напоминания в формате ЧЧ:ММ (например: 14:30):"

	txtTitleEmpty         = "❌ Название не может быть пустым. Напишите название напоминания:"
	txtTitleTooLong       = "❌ Название слишком длинное. Напишите название покороче:"
	txtDescriptionTooLong = "❌ Описание слишком длинное. Напишите описание покороче (или отправьте '" + skipToken + "'):"
	txtDateFormat         = "❌ Неверный формат даты. Используйте формат ДД.ММ.ГГГГ:"
	txtDatePast           = "❌ Дата не может быть в прошлом. Введите корректную дату:"
	txtTimeFormat         = "❌ Неверный формат времени. Используйте формат ЧЧ:ММ:"
	txtTimePast           = "❌ Время не может быть в прошлом. Введите корректное время:"
	txtSaveFailed         = "❌ Не удалось сохранить напоминание. Попробуйте отправить время ещё раз."
	txtInternalErr        = "❌ Что-то пошло не так. Попробуйте ещё раз."

	txtListHeader  = "📋 Ваши напоминания:"
	txtListEmpty   = "📭 У вас пока нет напоминаний.\n\nСоздайте первое напоминание!"
	txtListGone    = "📭 У вас больше нет напоминаний."
	txtDeleted     = "🗑 Напоминание удалено!"
	txtNotFound    = "Напоминание больше не существует."
)

func greeting(firstName string) string {
	return fmt.Sprintf("👋 Привет, %s!\n\n"+
		"Я бот для напоминаний. Помогу тебе не забыть важные дела!\n\n"+
		"Выбери действие:", messages.Escape(firstName))
}

// Клавиатура главного меню
func mainMenu() [][]messages.Button {
	return [][]messages.Button{
		{
			{Text: btnAdd, Data: Action{Kind: ActionAdd}.Data()},
			{Text: btnList, Data: Action{Kind: ActionList}.Data()},
		},
		{
			{Text: btnHelp, Data: Action{Kind: ActionHelp}.Data()},
		},
	}
}

// Кнопка на каждое напоминание плюс «Назад»
func reminderList(reminders []models.Reminder) [][]messages.Button {
	rows := make([][]messages.Button, 0, len(reminders)+1)
	for _, r := range reminders {
		status := "⏰"
		if r.Sent {
			status = "✅"
		}
		label := fmt.Sprintf("%s %s - %s %s", status, r.Title, r.DueDate(), r.DueTime())
		rows = append(rows, []messages.Button{
			{Text: label, Data: Action{Kind: ActionView, ReminderID: r.ID}.Data()},
		})
	}
	rows = append(rows, []messages.Button{{Text: btnBack, Data: Action{Kind: ActionMenu}.Data()}})
	return rows
}

func reminderActions(id int64) [][]messages.Button {
	return [][]messages.Button{{
		{Text: btnDelete, Data: Action{Kind: ActionDelete, ReminderID: id}.Data()},
		{Text: btnBack, Data: Action{Kind: ActionList}.Data()},
	}}
}

func reminderDetails(r *models.Reminder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📌 <b>%s</b>\n\n", messages.Escape(r.Title))
	if r.Description != "" {
		fmt.Fprintf(&b, "📄 Описание: %s\n", messages.Escape(r.Description))
	}
	fmt.Fprintf(&b, "📅 Дата: %s\n⏰ Время: %s", r.DueDate(), r.DueTime())
	return b.String()
}

func confirmation(title, date, hm string) string {
	return fmt.Sprintf("✅ Напоминание создано!\n\n📌 <b>%s</b>\n📅 %s\n⏰ %s",
		messages.Escape(title), date, hm)
}
