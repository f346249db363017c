// Package service defines the ports for stateless domain logic backed by infrastructure.
package service

// PasswordHasher hashes and verifies tenant account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with different parameters
	// than the hasher currently uses, e.g. after the configured cost changed.
	NeedsRehash(hash string) bool
}
