package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osuarez/clinic-manager/internal/model"
)

type memoryEntry struct {
	session   *model.Session
	expiresAt time.Time
}

// memoryStore keeps sessions in process memory. It backs tests and local
// development where no Redis is available; expiry semantics match the
// Redis store.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]memoryEntry
}

func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[uuid.UUID]memoryEntry),
	}
}

func (s *memoryStore) Save(_ context.Context, session *model.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memoryEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *memoryStore) Get(_ context.Context, id uuid.UUID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}
	return entry.session, nil
}

func (s *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
