// Package adminauth provides the authentication and authorization core of
// a multi-tenant admin backend: JWT access tokens bound to server-side
// sessions, a three-tier role policy, and rate-limited account email flows.
//
// The package is the public surface. It exposes [Engine], [Builder],
// [Config], and the value types the HTTP layer needs. Token encoding lives
// in token, role policy in roles, session persistence in session, the email
// rate limiter in ratelimit, and request guarding in middleware. Audit
// dispatch and counters live under internal/ and surface here through type
// aliases.
//
// Engine methods are safe to call from multiple goroutines after
// [Builder.Build]. A token is honored only while its session registry entry
// exists (unless the engine runs in [ModeJWTOnly]), so logout and refresh
// revoke immediately even though the signed token remains unexpired.
package adminauth
