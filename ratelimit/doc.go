// Package ratelimit caps how often outbound account emails may be sent to
// any single address.
//
// The limiter is a fixed-window counter keyed by email. A window opens on
// the first send and admits up to the configured count until it lapses; the
// next send after the window resets the count. The read and the write are
// separate store operations, so two concurrent callers racing on the same
// email can both be admitted. The cap is advisory rather than exact, which
// is acceptable for abuse throttling on email dispatch.
package ratelimit
