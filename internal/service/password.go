package service

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt accepts at most 72 bytes, so passwords are hashed as a fixed-size
// SHA-256 digest. Base64 keeps NUL bytes out of the bcrypt input.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func hashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword(passwordDigest(password), cost)
}

func checkPassword(hash []byte, password string) error {
	return bcrypt.CompareHashAndPassword(hash, passwordDigest(password))
}
