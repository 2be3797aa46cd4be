package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Demo@2025")
	require.NoError(t, err)
	assert.NotEqual(t, "Demo@2025", hash)
	assert.NoError(t, h.Compare(hash, "Demo@2025"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasherClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(100).Cost)
}

func TestJWTRoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)

	token, expiresAt, err := issuer.Issue("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTIssuer("secret", time.Hour).Issue("user-1")
	require.NoError(t, err)

	_, err = NewJWTIssuer("other", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = NewJWTIssuer("secret", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestJWTRejectsNoneAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &UserClaims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTIssuer("secret", time.Hour).Parse(token)
	assert.Error(t, err)
}
