package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	senderMocks "telegram-reminder-bot/internal/messages/mocks"
	"telegram-reminder-bot/internal/models"
	storeMocks "telegram-reminder-bot/internal/storage/mocks"
)

func testReminder() models.Reminder {
	return models.Reminder{
		ID:     11,
		UserID: 42,
		Title:  "Pay rent",
		DueAt:  time.Date(2024, time.December, 25, 13, 59, 0, 0, time.UTC),
	}
}

func TestDispatchSendsThenMarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := senderMocks.NewMockSender(ctrl)
	store := storeMocks.NewMockRepository(ctrl)
	ctx := context.Background()
	r := testReminder()

	gomock.InOrder(
		sender.EXPECT().SendText(int64(42), "🔔 <b>НАПОМИНАНИЕ</b>\n\n📌 Pay rent").Return(nil),
		store.EXPECT().MarkSent(ctx, int64(11)).Return(nil),
	)

	require.NoError(t, NewDispatcher(sender, store).Dispatch(ctx, r))
}

func TestDispatchFailureDoesNotMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := senderMocks.NewMockSender(ctrl)
	store := storeMocks.NewMockRepository(ctrl)
	blocked := errors.New("Forbidden: bot was blocked by the user")

	sender.EXPECT().SendText(int64(42), gomock.Any()).Return(blocked)
	// no MarkSent expected

	err := NewDispatcher(sender, store).Dispatch(context.Background(), testReminder())
	require.Error(t, err)
	assert.ErrorIs(t, err, blocked)
}

func TestDispatchMarkFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := senderMocks.NewMockSender(ctrl)
	store := storeMocks.NewMockRepository(ctrl)
	dbErr := errors.New("database is locked")

	sender.EXPECT().SendText(int64(42), gomock.Any()).Return(nil)
	store.EXPECT().MarkSent(gomock.Any(), int64(11)).Return(dbErr)

	err := NewDispatcher(sender, store).Dispatch(context.Background(), testReminder())
	assert.ErrorIs(t, err, dbErr)
}

func TestNotification(t *testing.T) {
	r := testReminder()
	assert.Equal(t, "🔔 <b>НАПОМИНАНИЕ</b>\n\n📌 Pay rent", Notification(r))

	r.Title = "a<b"
	r.Description = "x & y"
	assert.Equal(t, "🔔 <b>НАПОМИНАНИЕ</b>\n\n📌 a&lt;b\n📄 x &amp; y", Notification(r))
}

func TestNotificationTruncatesLongText(t *testing.T) {
	r := testReminder()
	r.Title = strings.Repeat("a", models.MaxTitleLen+50)
	r.Description = strings.Repeat("я", models.MaxDescriptionLen*3)

	text := Notification(r)
	assert.Less(t, utf8.RuneCountInString(text), 4096)
	assert.Contains(t, text, strings.Repeat("a", models.MaxTitleLen-1)+"…")
	assert.NotContains(t, text, strings.Repeat("a", models.MaxTitleLen))
	assert.Contains(t, text, strings.Repeat("я", models.MaxDescriptionLen-1)+"…")
}
