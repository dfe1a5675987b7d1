// internal/pkg/auth/password.go
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/foodhub-storefront/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a password does not match its stored form
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordVerifier hashes passwords for storage and checks them at login
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Verify(password, stored string) error
}

// NewPasswordVerifier picks the scheme configured by AUTH_PASSWORD_SCHEME
func NewPasswordVerifier(cfg *config.Config) PasswordVerifier {
	if cfg.Auth.PasswordScheme == "plaintext" {
		return PlaintextVerifier{}
	}
	return NewBcryptVerifier(cfg.Security.BcryptCost)
}

// BcryptVerifier stores bcrypt hashes. Records written before hashing was
// introduced hold the raw password and are still accepted.
type BcryptVerifier struct {
	cost int
}

func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash hashes a password using bcrypt
func (b *BcryptVerifier) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify verifies a password against its hash
func (b *BcryptVerifier) Verify(password, stored string) error {
	if !isBcryptHash(stored) {
		return PlaintextVerifier{}.Verify(password, stored)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

func isBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// PlaintextVerifier keeps passwords as entered. Demo deployments only.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(password, stored string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
