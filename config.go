package adminauth

import (
	"errors"
	"time"

	"github.com/maxwellflitton/adminauth/ratelimit"
	"github.com/maxwellflitton/adminauth/session"
	"github.com/maxwellflitton/adminauth/token"
)

// TokenConfig tunes token issuance.
type TokenConfig struct {
	// TTL is the token and session lifetime. Zero means [token.DefaultTTL].
	TTL time.Duration
}

// SessionConfig tunes the session registry.
type SessionConfig struct {
	// RedisPrefix namespaces session keys when the registry is
	// Redis-backed. Empty means [session.DefaultRedisPrefix].
	RedisPrefix string
}

// RateLimitConfig tunes the per-email send budget.
type RateLimitConfig struct {
	// Limit is the number of sends admitted per window. Zero means
	// [ratelimit.DefaultLimit].
	Limit int
	// Window is the budget period. Zero means [ratelimit.DefaultWindow].
	Window time.Duration
	// RedisPrefix namespaces rate limit keys when the store is
	// Redis-backed. Empty means [ratelimit.DefaultRedisPrefix].
	RedisPrefix string
}

// AuditConfig tunes async audit dispatch.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull discards events instead of blocking emitters when the
	// buffer is full.
	DropIfFull bool
}

// Config is the engine configuration. The zero value plus DefaultConfig's
// adjustments is a working setup.
type Config struct {
	Token     TokenConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Audit     AuditConfig

	// MetricsEnabled turns on the operation counters.
	MetricsEnabled bool

	// Mode selects session-backed or token-only validation.
	Mode ValidationMode
}

// DefaultConfig returns the baseline configuration: 20 minute tokens,
// session-backed validation, five emails per hour per address, audit and
// metrics off.
func DefaultConfig() Config {
	return Config{
		Token:     TokenConfig{TTL: token.DefaultTTL},
		Session:   SessionConfig{RedisPrefix: session.DefaultRedisPrefix},
		RateLimit: RateLimitConfig{Limit: ratelimit.DefaultLimit, Window: ratelimit.DefaultWindow},
		Audit:     AuditConfig{BufferSize: 256, DropIfFull: true},
		Mode:      ModeSession,
	}
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Token.TTL < 0 {
		return errors.New("token ttl must not be negative")
	}
	if c.RateLimit.Limit < 0 {
		return errors.New("rate limit must not be negative")
	}
	if c.RateLimit.Window < 0 {
		return errors.New("rate limit window must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("audit buffer size must not be negative")
	}
	if c.Mode != ModeSession && c.Mode != ModeJWTOnly {
		return errors.New("unknown validation mode")
	}
	return nil
}
