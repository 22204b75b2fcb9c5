// Package audit implements async event dispatching for the auth flows.
//
// The engine emits one [Event] per security-relevant operation (login,
// logout, refresh, validation, email sends). A [Dispatcher] relays events
// to a caller-supplied [Sink] off the request path, either blocking or
// dropping when the buffer is full.
//
// This package owns buffering and delivery only. Which events exist and
// when they fire is decided by the engine.
package audit
