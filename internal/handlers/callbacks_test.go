package handlers

import (
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/mock/gomock"

	"telegram-reminder-bot/internal/models"
	"telegram-reminder-bot/internal/storage"
)

const testMessageID = 777

func (s *HandlerTestSuite) callback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: s.userID},
		Message: &tgbotapi.Message{
			MessageID: testMessageID,
			Chat:      &tgbotapi.Chat{ID: s.userID, Type: "private"},
		},
		Data: data,
	}
}

func (s *HandlerTestSuite) reminders() []models.Reminder {
	return []models.Reminder{
		{ID: 1, UserID: s.userID, Title: "Pay rent", DueAt: time.Date(2099, 1, 1, 9, 0, 0, 0, s.loc)},
		{ID: 2, UserID: s.userID, Title: "Call mom", DueAt: time.Date(2024, 12, 24, 18, 30, 0, 0, s.loc), Sent: true},
	}
}

func (s *HandlerTestSuite) TestAddStartsWizard() {
	s.putSession(models.Session{Step: models.StepTime, Title: "old", Date: "01.01.2099"})

	gomock.InOrder(
		s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtAskTitle, gomock.Nil()).Return(nil),
		s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil),
	)

	s.handler.HandleCallback(s.ctx, s.callback(Action{Kind: ActionAdd}.Data()))

	sess := s.currentSession()
	s.Equal(models.StepTitle, sess.Step)
	s.Empty(sess.Title)
	s.Empty(sess.Date)
}

func (s *HandlerTestSuite) TestListRendersReminders() {
	list := s.reminders()
	s.mockStore.EXPECT().ListReminders(s.ctx, s.userID).Return(list, nil)
	s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtListHeader, reminderList(list)).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil)

	s.handler.HandleCallback(s.ctx, s.callback(dataList))

	rows := reminderList(list)
	s.Require().Len(rows, 3)
	s.Equal("⏰ Pay rent - 01.01.2099 09:00", rows[0][0].Text)
	s.Equal("view_reminder_1", rows[0][0].Data)
	s.Equal("✅ Call mom - 24.12.2024 18:30", rows[1][0].Text)
	s.Equal(dataMenu, rows[2][0].Data)
}

func (s *HandlerTestSuite) TestListEmpty() {
	s.mockStore.EXPECT().ListReminders(s.ctx, s.userID).Return(nil, nil)
	s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtListEmpty, mainMenu()).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil)

	s.handler.HandleCallback(s.ctx, s.callback(dataList))
}

func (s *HandlerTestSuite) TestListStoreError() {
	s.mockStore.EXPECT().ListReminders(s.ctx, s.userID).Return(nil, errors.New("database is locked"))
	s.mockSender.EXPECT().SendText(s.userID, txtInternalErr).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil)

	s.handler.HandleCallback(s.ctx, s.callback(dataList))
}

func (s *HandlerTestSuite) TestHelpAndMenu() {
	s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtHelp, mainMenu()).Return(nil)
	s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtMenu, mainMenu()).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil).Times(2)

	s.handler.HandleCallback(s.ctx, s.callback(dataHelp))
	s.handler.HandleCallback(s.ctx, s.callback(dataMenu))
}

func (s *HandlerTestSuite) TestViewShowsDetails() {
	r := &models.Reminder{ID: 9, UserID: s.userID, Title: "<b>rent</b>", Description: "bank", DueAt: time.Date(2099, 1, 1, 9, 0, 0, 0, s.loc)}
	s.mockStore.EXPECT().GetReminder(s.ctx, int64(9), s.userID).Return(r, nil)
	s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID,
		"📌 <b>&lt;b&gt;rent&lt;/b&gt;</b>\n\n📄 Описание: bank\n📅 Дата: 01.01.2099\n⏰ Время: 09:00",
		reminderActions(9)).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil)

	s.handler.HandleCallback(s.ctx, s.callback("view_reminder_9"))
}

func (s *HandlerTestSuite) TestViewMissingReminder() {
	s.mockStore.EXPECT().GetReminder(s.ctx, int64(9), s.userID).Return(nil, storage.ErrNotFound)
	s.mockStore.EXPECT().ListReminders(s.ctx, s.userID).Return(nil, nil)
	s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtListEmpty, mainMenu()).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", txtNotFound).Return(nil)

	s.handler.HandleCallback(s.ctx, s.callback("view_reminder_9"))
}

func (s *HandlerTestSuite) TestDeleteRerendersList() {
	remaining := s.reminders()[:1]
	gomock.InOrder(
		s.mockStore.EXPECT().DeleteReminder(s.ctx, int64(2), s.userID).Return(nil),
		s.mockStore.EXPECT().ListReminders(s.ctx, s.userID).Return(remaining, nil),
		s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtListHeader, reminderList(remaining)).Return(nil),
		s.mockSender.EXPECT().AnswerCallback("cb-1", txtDeleted).Return(nil),
	)

	s.handler.HandleCallback(s.ctx, s.callback("delete_reminder_2"))
}

func (s *HandlerTestSuite) TestDeleteLastReminder() {
	s.mockStore.EXPECT().DeleteReminder(s.ctx, int64(1), s.userID).Return(nil)
	s.mockStore.EXPECT().ListReminders(s.ctx, s.userID).Return(nil, nil)
	s.mockSender.EXPECT().EditWithOptions(s.userID, testMessageID, txtListGone, mainMenu()).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", txtDeleted).Return(nil)

	s.handler.HandleCallback(s.ctx, s.callback("delete_reminder_1"))
}

func (s *HandlerTestSuite) TestUnknownCallbackOnlyAnswers() {
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil)

	s.handler.HandleCallback(s.ctx, s.callback("view_reminder_abc"))
}

func (s *HandlerTestSuite) TestCallbackWithoutMessageSendsNew() {
	cq := s.callback(dataMenu)
	cq.Message = nil
	s.mockSender.EXPECT().SendWithOptions(s.userID, txtMenu, mainMenu()).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil)

	s.handler.HandleCallback(s.ctx, cq)
}
