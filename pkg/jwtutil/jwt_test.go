package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suteetoe/jobboard/pkg/config"
)

func TestGenerateAndValidate(t *testing.T) {
	j := NewJWTUtil(&config.JWTConfig{SigningKey: "k", ExpirationHours: 2})

	token, err := j.GenerateToken(42, "a@example.com", "admin")
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 2*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestValidateRejectsExpired(t *testing.T) {
	j := NewJWTUtil(&config.JWTConfig{SigningKey: "k", ExpirationHours: 1})
	j.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	token, err := j.GenerateToken(1, "a@example.com", "user")
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTUtil(&config.JWTConfig{SigningKey: "one", ExpirationHours: 1})
	verifier := NewJWTUtil(&config.JWTConfig{SigningKey: "two", ExpirationHours: 1})

	token, err := issuer.GenerateToken(1, "a@example.com", "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	j := NewJWTUtil(&config.JWTConfig{SigningKey: "k", ExpirationHours: 1})

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{
		UserID: 1,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	assert.Error(t, err)

	_, err = j.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNilConfig(t *testing.T) {
	j := NewJWTUtil(nil)
	_, err := j.GenerateToken(1, "a@example.com", "user")
	assert.Error(t, err)
	_, err = j.ValidateToken("x")
	assert.Error(t, err)
}
