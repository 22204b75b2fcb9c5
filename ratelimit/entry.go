package ratelimit

import "time"

// Entry is one email's rate-limit window: when the window opened and how
// many sends have been recorded inside it.
type Entry struct {
	Email       string    `json:"email"`
	WindowStart time.Time `json:"window_start"`
	Count       int       `json:"count"`
}

// WithinWindow reports whether now still falls inside the entry's window.
func (e *Entry) WithinWindow(now time.Time, window time.Duration) bool {
	return now.Sub(e.WindowStart) < window
}

// Limited reports whether the entry has used up the allowed count.
func (e *Entry) Limited(limit int) bool {
	return e.Count >= limit
}
