// Package token implements the session credential: a signed, time-bounded
// bearer token binding a user, a role, and the originating device.
//
// Tokens are HMAC-SHA256 JWTs. The expiry deliberately lives in the custom
// time_expire claim rather than the registered exp claim: older clients omit
// registered claims, so decoding stays loose and expiry is enforced as an
// explicit separate step by CheckExpiry, never by the parser.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/maxwellflitton/adminauth/roles"
	"github.com/maxwellflitton/adminauth/secrets"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 20 * time.Minute

// SecretName is the name of the signing secret fetched from the secrets
// provider.
const SecretName = "SECRET_KEY"

var (
	// ErrExpired is returned by CheckExpiry once the token lifetime has
	// passed. The message is stable; clients pattern-match on it.
	ErrExpired = errors.New("Token has expired")
	// ErrDeviceMismatch is returned by CheckDevice when the presented
	// device fingerprint differs from the one bound at issuance.
	ErrDeviceMismatch = errors.New("User-Agent does not match")
)

// Token is the decoded credential. Immutable once issued: refresh produces
// a new Token, never mutates an existing one.
type Token struct {
	UniqueID    string     `json:"unique_id"`
	UserID      int64      `json:"user_id"`
	Role        roles.Role `json:"role"`
	TimeStarted time.Time  `json:"time_started"`
	TimeExpire  time.Time  `json:"time_expire"`
	UserAgent   string     `json:"user_agent"`
}

// The registered-claim accessors intentionally report nothing so the JWT
// parser never enforces exp/nbf/iat; expiry is checked separately.

func (t *Token) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }

func (t *Token) GetIssuedAt() (*jwt.NumericDate, error) { return nil, nil }

func (t *Token) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

func (t *Token) GetIssuer() (string, error) { return "", nil }

func (t *Token) GetSubject() (string, error) { return "", nil }

func (t *Token) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// CheckExpiry fails once now is strictly after the token's expiry. A token
// checked exactly at its expiry instant still passes.
func (t *Token) CheckExpiry(now time.Time) error {
	if now.After(t.TimeExpire) {
		return ErrExpired
	}
	return nil
}

// CheckDevice compares the presented device fingerprint against the one
// bound at issuance. The comparison is exact string equality,
// case-sensitive; there is no cryptographic binding.
func (t *Token) CheckDevice(fingerprint string) error {
	if fingerprint != t.UserAgent {
		return ErrDeviceMismatch
	}
	return nil
}

// Codec issues, signs, and verifies tokens. Safe for concurrent use.
type Codec struct {
	secrets secrets.Provider
	ttl     time.Duration
	now     func() time.Time
}

// NewCodec builds a Codec. ttl <= 0 selects DefaultTTL; now == nil selects
// time.Now.
func NewCodec(provider secrets.Provider, ttl time.Duration, now func() time.Time) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Codec{secrets: provider, ttl: ttl, now: now}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Now reads the codec's clock. Expiry checks against this clock see the
// same time source tokens are issued with.
func (c *Codec) Now() time.Time {
	return c.now()
}

// Issue creates a fresh token for the user with a random unique id and
// expiry at now + TTL.
func (c *Codec) Issue(userID int64, role roles.Role, userAgent string) *Token {
	now := c.now().UTC()
	return &Token{
		UniqueID:    uuid.NewString(),
		UserID:      userID,
		Role:        role,
		TimeStarted: now,
		TimeExpire:  now.Add(c.ttl),
		UserAgent:   userAgent,
	}
}

// Encode serializes and signs the token. Secret lookup or signing failure
// surfaces as an error; Encode never panics.
func (c *Codec) Encode(t *Token) (string, error) {
	secret, err := c.secrets.Get(SecretName)
	if err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, t).SignedString([]byte(secret))
}

// Decode verifies the signature and structural shape of an encoded token.
// It does not enforce expiry: an expired token with a valid signature
// decodes cleanly and only fails CheckExpiry.
func (c *Codec) Decode(raw string) (*Token, error) {
	secret, err := c.secrets.Get(SecretName)
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	decoded := &Token{}
	parsed, err := parser.ParseWithClaims(raw, decoded, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return decoded, nil
}
