// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for password hashing, cosmetic content digests,
// UUID generation, HTTP response writing, and other common operations.
package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt digest from a plaintext password.
//
// bcrypt embeds a per-call random salt and an adaptive work factor, so the
// same password produces a different digest on every call. Only the digest
// is ever stored; verification goes through [CheckPasswordHash].
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the stored bcrypt digest.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
