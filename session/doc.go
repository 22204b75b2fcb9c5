// Package session provides the auth session registry: server-side records
// backing issued access tokens, with a compact binary encoding for the
// Redis-backed store.
//
// A session exists for exactly as long as its token is honored. Logout and
// refresh delete the record, which revokes the token immediately even
// though the token itself remains validly signed until its expiry.
package session
