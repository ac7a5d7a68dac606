package session

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"telegram-reminder-bot/internal/models"
)

// MemoryStore holds sessions in process memory. Sessions are lost on restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]models.Session
	ttl      time.Duration
	clock    clockwork.Clock
}

var _ Store = (*MemoryStore)(nil)

// NewMemory returns a MemoryStore. A non-positive ttl keeps sessions forever.
func NewMemory(clock clockwork.Clock, ttl time.Duration) *MemoryStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryStore{
		sessions: make(map[int64]models.Session),
		ttl:      ttl,
		clock:    clock,
	}
}

func (m *MemoryStore) Get(_ context.Context, userID int64) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	if m.ttl > 0 && m.clock.Since(s.UpdatedAt) > m.ttl {
		delete(m.sessions, userID)
		return nil, ErrNoSession
	}
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *s
	cp.UpdatedAt = m.clock.Now()
	m.sessions[s.UserID] = cp
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
	return nil
}
