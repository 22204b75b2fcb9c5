package session

import (
	"time"

	"github.com/maxwellflitton/adminauth/roles"
)

// Session is the server-side record backing an issued access token. The
// token carries a copy of these fields; the registry entry is what makes
// the token revocable before its natural expiry.
type Session struct {
	Key         string
	UserID      int64
	Role        roles.Role
	TimeStarted time.Time
	TimeExpire  time.Time
	UserAgent   string
}

// TTL reports how long the session has left relative to now. Expired
// sessions return a non-positive duration.
func (s *Session) TTL(now time.Time) time.Duration {
	return s.TimeExpire.Sub(now)
}

// Expired reports whether the session's lifetime has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.TimeExpire)
}
