package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-loyalty-admin/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists the whole session as one object under a single key,
// so a restore recovers the full profile and the stored fields can never
// desynchronize.
type SessionStore interface {
	Save(ctx context.Context, session *model.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

type memorySession struct {
	session   model.Session
	expiresAt time.Time
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

// NewMemorySessionStore is the non-durable fallback used when no Redis
// address is configured, and by tests. Entries expire lazily on Find,
// matching the TTL semantics of the Redis store.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *memorySessionStore) Save(_ context.Context, session *model.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memorySession{session: *session, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memorySessionStore) Find(_ context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
