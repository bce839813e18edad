package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcmarket/arc-api/internal/apperr"
	"github.com/arcmarket/arc-api/internal/config"
	"github.com/arcmarket/arc-api/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(config.AuthConfig{
		JWTSecret:     "test-secret",
		JWTExpiration: 1,
	}, &fakePersonStore{}, NewWalletService())

	token, expiresAt, err := svc.generateToken("0xabc")
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	wallet, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", wallet)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(config.AuthConfig{JWTSecret: "secret-a", JWTExpiration: 1}, &fakePersonStore{}, NewWalletService())
	verifier := NewAuthService(config.AuthConfig{JWTSecret: "secret-b", JWTExpiration: 1}, &fakePersonStore{}, NewWalletService())

	token, _, err := issuer.generateToken("0xabc")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)

	_, err = verifier.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthenticateWithWalletValidation(t *testing.T) {
	svc := NewAuthService(config.AuthConfig{JWTSecret: "test-secret", JWTExpiration: 1}, &fakePersonStore{}, NewWalletService())

	_, err := svc.AuthenticateWithWallet(models.WalletAuthRequest{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.AuthenticateWithWallet(models.WalletAuthRequest{
		Address:   "bad-address",
		Signature: "00",
		Message:   "hello",
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
