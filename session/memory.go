package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process session store. The map is created lazily on
// first write, so the zero value is ready to use.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemoryStore returns an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get looks up a session by key.
func (m *MemoryStore) Get(_ context.Context, key string) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[key]
	if !ok {
		return nil, false, nil
	}
	copied := *sess
	return &copied, true, nil
}

// Set inserts or replaces the session stored under sess.Key.
func (m *MemoryStore) Set(_ context.Context, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions == nil {
		m.sessions = make(map[string]*Session)
	}
	copied := *sess
	m.sessions[sess.Key] = &copied
	return nil
}

// Delete removes the session under key. Deleting an absent key is a no-op.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, key)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
