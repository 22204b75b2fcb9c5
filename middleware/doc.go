// Package middleware adapts the engine's token validation to net/http.
//
// [Guard] reads the raw token from the "token" header and the device
// fingerprint from User-Agent, calls Engine.Validate with the route's role
// requirement, and injects the caller's identity into the request context.
// Rejections are written as plain-text responses carrying the engine's
// stable error messages and status mapping.
//
// This package translates HTTP semantics into engine calls; it makes no
// authorization decisions of its own.
package middleware
