package adminauth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/maxwellflitton/adminauth/internal/audit"
	"github.com/maxwellflitton/adminauth/internal/metrics"
	"github.com/maxwellflitton/adminauth/mailer"
	"github.com/maxwellflitton/adminauth/ratelimit"
	"github.com/maxwellflitton/adminauth/roles"
	"github.com/maxwellflitton/adminauth/session"
	"github.com/maxwellflitton/adminauth/token"
)

// Engine is the authentication core. Construct it through [Builder.Build];
// all methods are safe for concurrent use afterwards.
type Engine struct {
	cfg        Config
	codec      *token.Codec
	directory  UserDirectory
	passwords  PasswordVerifier
	sessions   session.Store
	mail       *mailer.Service
	metrics    *metrics.Metrics
	dispatcher *audit.Dispatcher
}

// Login authenticates email and password, checks the requested role is
// assigned to the user, and issues a token bound to userAgent. The session
// registry entry is written before the token is signed, so a returned token
// is always revocable.
func (e *Engine) Login(ctx context.Context, email, password string, role roles.Role, userAgent string) (*LoginResult, error) {
	result, err := e.login(ctx, email, password, role, userAgent)
	if err != nil {
		e.metrics.Inc(metrics.LoginFailure)
		e.emit(ctx, audit.Event{EventType: audit.EventLogin, Email: email, UserAgent: userAgent, Error: err.Error()})
		return nil, err
	}

	e.metrics.Inc(metrics.LoginSuccess)
	e.metrics.Inc(metrics.SessionCreated)
	e.emit(ctx, audit.Event{EventType: audit.EventLogin, Email: email, UserAgent: userAgent, Success: true})
	return result, nil
}

func (e *Engine) login(ctx context.Context, email, password string, role roles.Role, userAgent string) (*LoginResult, error) {
	user, err := e.directory.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := checkAccountState(user); err != nil {
		return nil, err
	}

	if ok, err := e.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidPassword
	}

	// Role assignment is only consulted once the caller has proven the
	// password, so failed logins cannot probe which roles a user holds.
	if err := e.checkRoleAssigned(ctx, user, role); err != nil {
		return nil, err
	}

	return e.issue(ctx, user.ID, role, userAgent)
}

// Refresh exchanges a still-valid token for a fresh one with a full
// lifetime. The old session entry is deleted before the new one is
// written, so the old token stops validating the moment refresh succeeds.
func (e *Engine) Refresh(ctx context.Context, raw, userAgent string) (*LoginResult, error) {
	result, err := e.refresh(ctx, raw, userAgent)
	if err != nil {
		e.metrics.Inc(metrics.RefreshFailure)
		e.emit(ctx, audit.Event{EventType: audit.EventRefresh, UserAgent: userAgent, Error: err.Error()})
		return nil, err
	}

	e.metrics.Inc(metrics.RefreshSuccess)
	e.emit(ctx, audit.Event{EventType: audit.EventRefresh, UserAgent: userAgent, Success: true})
	return result, nil
}

func (e *Engine) refresh(ctx context.Context, raw, userAgent string) (*LoginResult, error) {
	old, err := e.validate(ctx, raw, userAgent, roles.None())
	if err != nil {
		return nil, err
	}

	user, err := e.directory.GetByUUID(ctx, old.UniqueID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := e.checkAccount(ctx, user, old.Role); err != nil {
		return nil, err
	}

	if err := e.sessions.Delete(ctx, old.UniqueID); err != nil {
		return nil, err
	}
	e.metrics.Inc(metrics.SessionRevoked)

	return e.issue(ctx, user.ID, old.Role, userAgent)
}

// Logout revokes the token's session. In [ModeSession] the token stops
// validating immediately; the signed token itself stays intact until its
// expiry.
func (e *Engine) Logout(ctx context.Context, raw, userAgent string) error {
	tok, err := e.codec.Decode(raw)
	if err != nil {
		e.emit(ctx, audit.Event{EventType: audit.EventLogout, UserAgent: userAgent, Error: err.Error()})
		return Unauthorized(err.Error())
	}
	if err := tok.CheckDevice(userAgent); err != nil {
		e.emit(ctx, audit.Event{EventType: audit.EventLogout, UserID: tok.UserID, UserAgent: userAgent, Error: err.Error()})
		return Unauthorized(err.Error())
	}

	if err := e.sessions.Delete(ctx, tok.UniqueID); err != nil {
		return err
	}

	e.metrics.Inc(metrics.Logout)
	e.metrics.Inc(metrics.SessionRevoked)
	e.emit(ctx, audit.Event{EventType: audit.EventLogout, UserID: tok.UserID, TokenID: tok.UniqueID, UserAgent: userAgent, Success: true})
	return nil
}

// Validate runs the full check pipeline on a raw token: signature, device
// fingerprint, role requirement, expiry, and session presence when the
// engine runs in [ModeSession]. The checks run in that order and the first
// failure wins.
func (e *Engine) Validate(ctx context.Context, raw, userAgent string, requirement roles.Requirement) (*AuthResult, error) {
	start := time.Now()
	tok, err := e.validate(ctx, raw, userAgent, requirement)
	e.metrics.Observe(metrics.ValidateLatency, time.Since(start))

	if err != nil {
		e.metrics.Inc(metrics.ValidateRejected)
		e.emit(ctx, audit.Event{EventType: audit.EventValidate, UserAgent: userAgent, Error: err.Error()})
		return nil, err
	}

	e.metrics.Inc(metrics.ValidateSuccess)
	return &AuthResult{
		UserID:    tok.UserID,
		Role:      tok.Role,
		TokenID:   tok.UniqueID,
		UserAgent: tok.UserAgent,
	}, nil
}

func (e *Engine) validate(ctx context.Context, raw, userAgent string, requirement roles.Requirement) (*token.Token, error) {
	tok, err := e.codec.Decode(raw)
	if err != nil {
		return nil, Unauthorized(err.Error())
	}
	if err := tok.CheckDevice(userAgent); err != nil {
		return nil, Unauthorized(err.Error())
	}
	if err := requirement.Check(tok.Role); err != nil {
		return nil, Unauthorized(err.Error())
	}
	if err := tok.CheckExpiry(e.codec.Now()); err != nil {
		return nil, Unauthorized(err.Error())
	}

	if e.cfg.Mode == ModeSession {
		_, ok, err := e.sessions.Get(ctx, tok.UniqueID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSessionInactive
		}
	}

	return tok, nil
}

func (e *Engine) checkAccount(ctx context.Context, user *User, role roles.Role) error {
	if err := checkAccountState(user); err != nil {
		return err
	}
	return e.checkRoleAssigned(ctx, user, role)
}

func checkAccountState(user *User) error {
	if user.Blocked {
		return ErrUserBlocked
	}
	if !user.Confirmed {
		return ErrUserNotConfirmed
	}
	return nil
}

func (e *Engine) checkRoleAssigned(ctx context.Context, user *User, role roles.Role) error {
	assigned, err := e.directory.GetRoles(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, r := range assigned {
		if r == role {
			return nil
		}
	}
	return ErrRoleNotAssigned
}

func (e *Engine) issue(ctx context.Context, userID int64, role roles.Role, userAgent string) (*LoginResult, error) {
	tok := e.codec.Issue(userID, role, userAgent)

	err := e.sessions.Set(ctx, &session.Session{
		Key:         tok.UniqueID,
		UserID:      tok.UserID,
		Role:        tok.Role,
		TimeStarted: tok.TimeStarted,
		TimeExpire:  tok.TimeExpire,
		UserAgent:   tok.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	raw, err := e.codec.Encode(tok)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: raw, Role: role}, nil
}

// SendConfirmationEmail rotates the user's opaque id and emails a
// confirmation link carrying it. The rotation kills any link sent earlier.
func (e *Engine) SendConfirmationEmail(ctx context.Context, email string) error {
	return e.sendAccountEmail(ctx, email, e.mail.SendConfirmation)
}

// RequestPasswordReset rotates the user's opaque id and emails a password
// reset link carrying it.
func (e *Engine) RequestPasswordReset(ctx context.Context, email string) error {
	return e.sendAccountEmail(ctx, email, e.mail.SendPasswordReset)
}

func (e *Engine) sendAccountEmail(ctx context.Context, email string, send func(context.Context, string, string) (bool, error)) error {
	next := uuid.NewString()

	updated, err := e.directory.UpdateUUID(ctx, email, next)
	if err != nil {
		return err
	}
	if !updated {
		return Unknown("Failed to update users uuid")
	}

	sent, err := send(ctx, email, next)
	if err != nil {
		if errors.Is(err, ratelimit.ErrRateLimited) {
			e.metrics.Inc(metrics.RateLimitHit)
		}
		e.emit(ctx, audit.Event{EventType: audit.EventEmailSend, Email: email, Error: err.Error()})
		return err
	}
	if !sent {
		return Unknown("Failed to send email")
	}

	e.metrics.Inc(metrics.EmailSent)
	e.emit(ctx, audit.Event{EventType: audit.EventEmailSend, Email: email, Success: true})
	return nil
}

// Metrics returns a snapshot of the engine counters.
func (e *Engine) Metrics() MetricsSnapshot {
	return e.metrics.Take()
}

// AuditDropped reports audit events discarded due to a full buffer.
func (e *Engine) AuditDropped() uint64 {
	return e.dispatcher.Dropped()
}

// Close drains and stops the audit dispatcher.
func (e *Engine) Close() {
	e.dispatcher.Close()
}

func (e *Engine) emit(ctx context.Context, event audit.Event) {
	if e.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	event.IP = clientIPFromContext(ctx)
	e.dispatcher.Emit(ctx, event)
}
