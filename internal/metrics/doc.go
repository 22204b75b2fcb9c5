// Package metrics holds the engine's lock-free operation counters.
//
// Counters are fixed-slot atomics indexed by [ID], padded to avoid false
// sharing on the validation hot path. A disabled or nil *Metrics is safe to
// call and does nothing.
package metrics
