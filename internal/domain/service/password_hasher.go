// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher derives and verifies salted password hashes.
// Implementations are pure: the same inputs always produce the same hash.
type CredentialHasher interface {
	// NewSalt returns a fresh random salt, hex encoded.
	NewSalt() (string, error)

	// DeriveHash applies the key-derivation function to password and salt.
	DeriveHash(password, salt string) string

	// Verify recomputes the hash and compares it to expected in constant time.
	Verify(password, salt, expected string) bool
}
