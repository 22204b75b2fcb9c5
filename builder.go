package adminauth

import (
	"errors"
	"time"

	"github.com/maxwellflitton/adminauth/internal/audit"
	"github.com/maxwellflitton/adminauth/internal/metrics"
	"github.com/maxwellflitton/adminauth/mailer"
	"github.com/maxwellflitton/adminauth/password"
	"github.com/maxwellflitton/adminauth/ratelimit"
	"github.com/maxwellflitton/adminauth/secrets"
	"github.com/maxwellflitton/adminauth/session"
	"github.com/maxwellflitton/adminauth/token"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine]. Required inputs are the user directory
// and a secret provider; everything else has a default. Password checking
// defaults to argon2id, and with a Redis client the session registry and
// rate limit store live in Redis instead of in-process maps.
type Builder struct {
	config Config

	redis      redis.UniversalClient
	directory  UserDirectory
	passwords  PasswordVerifier
	secrets    secrets.Provider
	sessions   session.Store
	rateStore  ratelimit.Store
	mailSender mailer.Sender
	auditSink  AuditSink
	now        func() time.Time

	built bool
}

// New starts a builder with [DefaultConfig].
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis backs the session registry and rate limit store with Redis.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithUserDirectory sets the application's user storage.
func (b *Builder) WithUserDirectory(directory UserDirectory) *Builder {
	b.directory = directory
	return b
}

// WithPasswordVerifier overrides the argon2id password hash checker.
func (b *Builder) WithPasswordVerifier(verifier PasswordVerifier) *Builder {
	b.passwords = verifier
	return b
}

// WithSecrets sets the provider for the signing key, the Mailchimp API
// key, and the production toggle.
func (b *Builder) WithSecrets(provider secrets.Provider) *Builder {
	b.secrets = provider
	return b
}

// WithSessionStore overrides the session registry backend.
func (b *Builder) WithSessionStore(store session.Store) *Builder {
	b.sessions = store
	return b
}

// WithRateLimitStore overrides the rate limit backend.
func (b *Builder) WithRateLimitStore(store ratelimit.Store) *Builder {
	b.rateStore = store
	return b
}

// WithEmailSender overrides the mail delivery transport.
func (b *Builder) WithEmailSender(sender mailer.Sender) *Builder {
	b.mailSender = sender
	return b
}

// WithAuditSink sets the destination for audit events. Takes effect only
// when auditing is enabled in the config.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithClock overrides the time source used to issue tokens and check their
// expiry. Defaults to time.Now; tests inject a fixed clock.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build validates the configuration and wires the engine. A builder builds
// once.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	if b.directory == nil {
		return nil, errors.New("user directory is required")
	}
	if b.secrets == nil {
		return nil, errors.New("secret provider is required")
	}

	verifier := b.passwords
	if verifier == nil {
		hasher, err := password.NewHasher(password.DefaultConfig())
		if err != nil {
			return nil, err
		}
		verifier = hasher
	}

	sessions := b.sessions
	if sessions == nil {
		if b.redis != nil {
			sessions = session.NewRedisStore(b.redis, b.config.Session.RedisPrefix)
		} else {
			sessions = session.NewMemoryStore()
		}
	}

	rateStore := b.rateStore
	if rateStore == nil {
		if b.redis != nil {
			rateStore = ratelimit.NewRedisStore(b.redis, b.config.RateLimit.RedisPrefix)
		} else {
			rateStore = ratelimit.NewMemoryStore()
		}
	}

	sender := b.mailSender
	if sender == nil {
		sender = mailer.NewHTTPSender(nil, "")
	}

	limiter := ratelimit.NewLimiter(rateStore, b.config.RateLimit.Limit, b.config.RateLimit.Window, nil)

	engine := &Engine{
		cfg:       b.config,
		codec:     token.NewCodec(b.secrets, b.config.Token.TTL, b.now),
		directory: b.directory,
		passwords: verifier,
		sessions:  sessions,
		mail:      mailer.NewService(limiter, sender, b.secrets),
		metrics:   metrics.New(b.config.MetricsEnabled),
		dispatcher: audit.NewDispatcher(audit.Config{
			Enabled:    b.config.Audit.Enabled,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, b.auditSink),
	}

	b.built = true
	return engine, nil
}
