// Package password hashes and verifies account passwords with argon2id.
//
// Hashes use the PHC string format, so the work parameters travel with each
// hash and verification never depends on current configuration. [Hasher]
// satisfies the engine's verifier interface directly.
package password
