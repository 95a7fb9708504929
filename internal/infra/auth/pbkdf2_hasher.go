// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"soundflow/config"
	"soundflow/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 64
)

// pbkdf2Hasher derives PBKDF2-HMAC-SHA512 keys. Salts and hashes travel as hex strings.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher builds the credential hasher from the configured iteration count.
func NewPBKDF2Hasher(cfg *config.Config) service.CredentialHasher {
	iterations := 0
	if cfg != nil && cfg.Auth != nil {
		iterations = cfg.Auth.PBKDF2Iterations
	}

	return NewPBKDF2HasherWithIterations(iterations)
}

// NewPBKDF2HasherWithIterations is mainly for tests that need a cheap hasher.
func NewPBKDF2HasherWithIterations(iterations int) service.CredentialHasher {
	if iterations <= 0 {
		iterations = 210000
	}

	return &pbkdf2Hasher{iterations: iterations}
}

func (h *pbkdf2Hasher) NewSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random salt")
	}

	return hex.EncodeToString(buf), nil
}

// DeriveHash keys on the hex salt text itself, so stored salts are used exactly as persisted.
func (h *pbkdf2Hasher) DeriveHash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, keyLength, sha512.New)

	return hex.EncodeToString(key)
}

func (h *pbkdf2Hasher) Verify(password, salt, expected string) bool {
	actual := h.DeriveHash(password, salt)

	return subtle.ConstantTimeCompare([]byte(actual), []byte(expected)) == 1
}
