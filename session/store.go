package session

import "context"

// Store persists session records keyed by token ID. Get reports absence
// with the boolean rather than an error so callers can tell "revoked" apart
// from "backend down".
type Store interface {
	Get(ctx context.Context, key string) (*Session, bool, error)
	Set(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, key string) error
}
