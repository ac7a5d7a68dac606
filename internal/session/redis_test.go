package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"telegram-reminder-bot/internal/models"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	store  *RedisStore
	clock  *clockwork.FakeClock
	ctx    context.Context
}

func (s *RedisStoreTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.clock = clockwork.NewFakeClockAt(time.Date(2024, time.December, 25, 14, 0, 0, 0, time.UTC))
	store, err := NewRedis(&RedisConfig{RedisClient: s.client, TTL: time.Hour, Clock: s.clock})
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)
	_, err = NewRedis(&RedisConfig{})
	s.Error(err)
}

func (s *RedisStoreTestSuite) TestSaveGetDelete() {
	_, err := s.store.Get(s.ctx, 10)
	s.Require().ErrorIs(err, ErrNoSession)

	sess := &models.Session{
		UserID:      10,
		Step:        models.StepTime,
		Title:       "Pay rent",
		Description: "",
		Date:        "01.01.2099",
	}
	s.Require().NoError(s.store.Save(s.ctx, sess))
	s.True(s.mr.Exists("reminder_session:10"))

	got, err := s.store.Get(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(models.StepTime, got.Step)
	s.Equal("Pay rent", got.Title)
	s.Equal("01.01.2099", got.Date)
	s.True(s.clock.Now().Equal(got.UpdatedAt))

	s.Require().NoError(s.store.Delete(s.ctx, 10))
	_, err = s.store.Get(s.ctx, 10)
	s.ErrorIs(err, ErrNoSession)
}

func (s *RedisStoreTestSuite) TestSessionExpires() {
	s.Require().NoError(s.store.Save(s.ctx, &models.Session{UserID: 3, Step: models.StepTitle}))

	s.mr.FastForward(59 * time.Minute)
	_, err := s.store.Get(s.ctx, 3)
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)
	_, err = s.store.Get(s.ctx, 3)
	s.ErrorIs(err, ErrNoSession)
}

func (s *RedisStoreTestSuite) TestCorruptPayload() {
	s.Require().NoError(s.mr.Set("reminder_session:4", "{not json"))
	_, err := s.store.Get(s.ctx, 4)
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNoSession)
}
