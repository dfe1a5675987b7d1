package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/foodhub-storefront/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)

	hash, err := v.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, isBcryptHash(hash))

	assert.NoError(t, v.Verify("s3cret", hash))
	assert.ErrorIs(t, v.Verify("wrong", hash), ErrPasswordMismatch)
}

func TestBcryptVerifierAcceptsLegacyPlaintext(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)
	assert.NoError(t, v.Verify("pizza123", "pizza123"))
	assert.ErrorIs(t, v.Verify("pizza", "pizza123"), ErrPasswordMismatch)
}

func TestBcryptVerifierClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptVerifier(99).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptVerifier(0).cost)
}

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}
	stored, err := v.Hash("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", stored)
	assert.NoError(t, v.Verify("abc", stored))
	assert.ErrorIs(t, v.Verify("abd", stored), ErrPasswordMismatch)
}

func TestNewPasswordVerifier(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.PasswordScheme = "plaintext"
	assert.IsType(t, PlaintextVerifier{}, NewPasswordVerifier(cfg))

	cfg.Auth.PasswordScheme = "bcrypt"
	cfg.Security.BcryptCost = bcrypt.MinCost
	assert.IsType(t, &BcryptVerifier{}, NewPasswordVerifier(cfg))
}
