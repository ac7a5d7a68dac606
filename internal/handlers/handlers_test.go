package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-reminder-bot/internal/models"
	"telegram-reminder-bot/internal/session"
)

const groupChatID = -100

func messageIn(chat *tgbotapi.Chat, userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: chat,
		From: &tgbotapi.User{ID: userID},
		Text: text,
	}}
}

func privateChat(userID int64) *tgbotapi.Chat {
	return &tgbotapi.Chat{ID: userID, Type: "private"}
}

func (s *HandlerTestSuite) TestGroupMessagesAreDropped() {
	const alice, bob = int64(1), int64(2)
	group := &tgbotapi.Chat{ID: groupChatID, Type: "group"}
	s.Require().NoError(s.sessions.Save(s.ctx, &models.Session{UserID: alice, Step: models.StepTitle}))

	// no sender or store calls expected
	s.handler.HandleUpdate(s.ctx, messageIn(group, alice, "Alice title"))
	s.handler.HandleUpdate(s.ctx, messageIn(group, bob, "Bob chatter"))

	sess, err := s.sessions.Get(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(models.StepTitle, sess.Step)
	s.Empty(sess.Title)

	_, err = s.sessions.Get(s.ctx, bob)
	s.ErrorIs(err, session.ErrNoSession)
}

func (s *HandlerTestSuite) TestGroupCallbackIsDropped() {
	cq := s.callback(dataList)
	cq.Message.Chat = &tgbotapi.Chat{ID: groupChatID, Type: "supergroup"}

	s.handler.HandleUpdate(s.ctx, tgbotapi.Update{CallbackQuery: cq})
}

func (s *HandlerTestSuite) TestUsersHaveSeparateWizards() {
	const alice, bob = int64(1), int64(2)
	s.Require().NoError(s.sessions.Save(s.ctx, &models.Session{UserID: alice, Step: models.StepTitle}))

	s.mockSender.EXPECT().SendWithOptions(bob, txtGuidance, mainMenu()).Return(nil)
	s.mockSender.EXPECT().SendText(alice, txtAskDescription).Return(nil)

	s.handler.HandleUpdate(s.ctx, messageIn(privateChat(bob), bob, "Bob chatter"))
	s.handler.HandleUpdate(s.ctx, messageIn(privateChat(alice), alice, "Alice title"))

	sess, err := s.sessions.Get(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(models.StepDescription, sess.Step)
	s.Equal("Alice title", sess.Title)

	_, err = s.sessions.Get(s.ctx, bob)
	s.ErrorIs(err, session.ErrNoSession)
}

func (s *HandlerTestSuite) TestRemindersAreScopedToSender() {
	const bob = int64(2)
	cq := s.callback(dataList)
	cq.From = &tgbotapi.User{ID: bob}
	cq.Message.Chat = privateChat(bob)

	s.mockStore.EXPECT().ListReminders(s.ctx, bob).Return(nil, nil)
	s.mockSender.EXPECT().EditWithOptions(bob, testMessageID, txtListEmpty, mainMenu()).Return(nil)
	s.mockSender.EXPECT().AnswerCallback("cb-1", "").Return(nil)

	s.handler.HandleUpdate(s.ctx, tgbotapi.Update{CallbackQuery: cq})
}
