package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"telegram-reminder-bot/internal/models"
)

const sessionKeyPrefix = "reminder_session:"

// RedisConfig holds configuration for the Redis session store.
type RedisConfig struct {
	RedisClient *redis.Client
	// TTL expires abandoned wizards. Zero keeps them until deleted.
	TTL time.Duration
	// Clock stamps UpdatedAt. Defaults to the real clock.
	Clock clockwork.Clock
}

// RedisStore keeps sessions in Redis so a wizard survives a bot restart.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	clock  clockwork.Clock
}

var _ Store = (*RedisStore)(nil)

// NewRedis creates a Redis-backed session store.
func NewRedis(cfg *RedisConfig) (*RedisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RedisStore{client: cfg.RedisClient, ttl: cfg.TTL, clock: clock}, nil
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}

func (r *RedisStore) Get(ctx context.Context, userID int64) (*models.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *models.Session) error {
	cp := *s
	cp.UpdatedAt = r.clock.Now()
	raw, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
