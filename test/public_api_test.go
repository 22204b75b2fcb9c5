package test

import (
	"context"
	"net/http"
	"testing"

	adminauth "github.com/maxwellflitton/adminauth"
	"github.com/maxwellflitton/adminauth/middleware"
	"github.com/maxwellflitton/adminauth/roles"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = adminauth.New

	var _ *adminauth.Engine
	var _ adminauth.Config
	var _ adminauth.AuthResult
	var _ adminauth.LoginResult
	var _ adminauth.User
	var _ adminauth.UserDirectory
	var _ adminauth.PasswordVerifier
	var _ adminauth.AuditSink
	var _ adminauth.ValidationMode

	var _ error = adminauth.ErrUserNotFound
	var _ error = adminauth.ErrUserBlocked
	var _ error = adminauth.ErrUserNotConfirmed
	var _ error = adminauth.ErrInvalidPassword
	var _ error = adminauth.ErrRoleNotAssigned
	var _ error = adminauth.ErrSessionInactive

	var _ func(*adminauth.Engine, roles.Requirement) func(http.Handler) http.Handler = middleware.Guard
	var _ func(*adminauth.Engine) func(http.Handler) http.Handler = middleware.RequireSuperAdmin
	var _ func(*adminauth.Engine) func(http.Handler) http.Handler = middleware.RequireAdmin
	var _ func(*adminauth.Engine) func(http.Handler) http.Handler = middleware.RequireWorker

	var _ func(*adminauth.Engine, context.Context, string, string, roles.Role, string) (*adminauth.LoginResult, error) = (*adminauth.Engine).Login
	var _ func(*adminauth.Engine, context.Context, string, string) (*adminauth.LoginResult, error) = (*adminauth.Engine).Refresh
	var _ func(*adminauth.Engine, context.Context, string, string, roles.Requirement) (*adminauth.AuthResult, error) = (*adminauth.Engine).Validate
	var _ func(*adminauth.Engine, context.Context, string, string) error = (*adminauth.Engine).Logout
	var _ func(*adminauth.Engine, context.Context, string) error = (*adminauth.Engine).SendConfirmationEmail
	var _ func(*adminauth.Engine, context.Context, string) error = (*adminauth.Engine).RequestPasswordReset
}
