// Package session keeps server-side session state keyed by an opaque
// session identifier delivered to the client in a cookie.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated state attached to one session identifier.
type Session struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Authenticated bool   `json:"authenticated"`
}

type Store interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, id string, s Session) error
	Delete(ctx context.Context, id string) error
}

// NewID returns a fresh opaque session identifier.
func NewID() string {
	return uuid.NewString()
}

// MemoryStore keeps sessions in process memory. Used when no Redis address
// is configured, and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (Session, bool, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return Session{}, false, nil
	}
	if m.ttl > 0 && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return Session{}, false, nil
	}
	return entry.session, true, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = memoryEntry{
		session:   s,
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
