package session

import (
	"context"
	"errors"
)

// StaticStore reports every key as present, handing back a copy of the
// configured session with the requested key filled in. Useful in tests that
// exercise the validation pipeline without a live backend.
type StaticStore struct {
	Session Session
}

func (s *StaticStore) Get(_ context.Context, key string) (*Session, bool, error) {
	copied := s.Session
	copied.Key = key
	return &copied, true, nil
}

func (s *StaticStore) Set(_ context.Context, _ *Session) error { return nil }

func (s *StaticStore) Delete(_ context.Context, _ string) error { return nil }

// EmptyStore reports every key as absent. Writes and deletes succeed and
// are discarded.
type EmptyStore struct{}

func (EmptyStore) Get(_ context.Context, _ string) (*Session, bool, error) {
	return nil, false, nil
}

func (EmptyStore) Set(_ context.Context, _ *Session) error { return nil }

func (EmptyStore) Delete(_ context.Context, _ string) error { return nil }

// FailingStore returns an error from every operation, for exercising
// fail-closed behavior when the backend is down.
type FailingStore struct{}

func (FailingStore) Get(_ context.Context, _ string) (*Session, bool, error) {
	return nil, false, errors.New("session store failure")
}

func (FailingStore) Set(_ context.Context, _ *Session) error {
	return errors.New("session store failure")
}

func (FailingStore) Delete(_ context.Context, _ string) error {
	return errors.New("session store failure")
}
