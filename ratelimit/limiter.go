package ratelimit

import (
	"context"
	"errors"
	"time"
)

// ErrRateLimited is returned when an email has exhausted its send budget
// for the current window.
var ErrRateLimited = errors.New("Email rate limited")

// Defaults applied when the limiter is constructed with zero values.
const (
	DefaultLimit  = 5
	DefaultWindow = time.Hour
)

// Limiter enforces a per-email send budget over a rolling window.
//
// The check is a soft limit: the read and the write are separate store
// operations, so two concurrent checks for the same email can both admit.
// Email sending tolerates the occasional extra admit; the window still
// bounds sustained volume.
type Limiter struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewLimiter creates a limiter over the given store. Non-positive limit or
// window fall back to [DefaultLimit] and [DefaultWindow]; a nil clock falls
// back to time.Now.
func NewLimiter(store Store, limit int, window time.Duration, now func() time.Time) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{store: store, limit: limit, window: window, now: now}
}

// CheckAndRecord admits or rejects one send for the email, recording the
// admit in the store. A new email opens a window with the call counted.
// Inside the window the stored count is checked against the limit before
// it is incremented; a rejected call leaves the entry untouched. Once the
// window has lapsed the entry is reset and the call admitted.
func (l *Limiter) CheckAndRecord(ctx context.Context, email string) error {
	now := l.now()

	entry, ok, err := l.store.Get(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return l.store.Put(ctx, &Entry{Email: email, WindowStart: now, Count: 1})
	}

	if entry.WithinWindow(now, l.window) {
		if entry.Limited(l.limit) {
			return ErrRateLimited
		}
		entry.Count++
		return l.store.Put(ctx, entry)
	}

	entry.WindowStart = now
	entry.Count = 1
	return l.store.Put(ctx, entry)
}
