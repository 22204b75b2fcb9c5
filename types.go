package adminauth

import (
	"context"

	"github.com/maxwellflitton/adminauth/roles"
)

// User is the account record the engine authenticates against. UUID is the
// rotating opaque id used by email confirmation and password reset links.
type User struct {
	ID           int64
	UUID         string
	Email        string
	Username     string
	PasswordHash string
	Blocked      bool
	Confirmed    bool
}

// UserDirectory is the application's user storage. The engine never writes
// users; UpdateUUID is the one mutation, rotating the opaque id before an
// email flow so stale links die.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUUID(ctx context.Context, uuid string) (*User, error)
	GetRoles(ctx context.Context, userID int64) ([]roles.Role, error)
	UpdateUUID(ctx context.Context, email, uuid string) (bool, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) (bool, error)
}

// LoginResult is returned from a successful login or refresh.
type LoginResult struct {
	Token string
	Role  roles.Role
}

// AuthResult identifies the caller after a token passed validation.
type AuthResult struct {
	UserID    int64
	Role      roles.Role
	TokenID   string
	UserAgent string
}

// ValidationMode selects how far token validation reaches.
type ValidationMode int

const (
	// ModeSession validates the token and requires its session registry
	// entry to still exist. Logout and refresh revoke immediately.
	ModeSession ValidationMode = iota

	// ModeJWTOnly validates the token without consulting the registry.
	// Cheaper, but revocation waits for token expiry.
	ModeJWTOnly
)

func (m ValidationMode) String() string {
	switch m {
	case ModeSession:
		return "session"
	case ModeJWTOnly:
		return "jwt-only"
	default:
		return "unknown"
	}
}
