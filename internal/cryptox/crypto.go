// Package cryptox holds password hashing for account credentials.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	keySize  = 32
)

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives an argon2id hash of password with salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// VerifyPassword compares in constant time.
func VerifyPassword(password, salt, hash []byte) bool {
	got := HashPassword(password, salt)
	defer common.WipeByteArray(got)
	return subtle.ConstantTimeCompare(got, hash) == 1
}
