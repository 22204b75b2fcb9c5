package ratelimit

import "context"

// Store persists rate-limit entries keyed by email. Get reports absence
// with the boolean; Put inserts or replaces.
type Store interface {
	Get(ctx context.Context, email string) (*Entry, bool, error)
	Put(ctx context.Context, entry *Entry) error
}
