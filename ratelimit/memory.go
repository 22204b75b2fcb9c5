package ratelimit

import (
	"context"
	"sync"
)

// MemoryStore is an in-process entry store. The map is created lazily, so
// the zero value is ready to use.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

// NewMemoryStore returns an empty in-memory entry store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get looks up the entry for an email.
func (m *MemoryStore) Get(_ context.Context, email string) (*Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[email]
	if !ok {
		return nil, false, nil
	}
	copied := *entry
	return &copied, true, nil
}

// Put inserts or replaces the entry stored under entry.Email.
func (m *MemoryStore) Put(_ context.Context, entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries == nil {
		m.entries = make(map[string]*Entry)
	}
	copied := *entry
	m.entries[entry.Email] = &copied
	return nil
}
