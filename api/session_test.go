package api

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	sessions := newSessionManager("test-secret")

	token, err := sessions.Issue(42, "myinsta")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	profileID, slug, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, profileID)
	assert.Equal(t, "myinsta", slug)
}

func TestSessionTokenGarbageRejected(t *testing.T) {
	sessions := newSessionManager("test-secret")

	_, _, err := sessions.Verify("not-a-token")
	assert.Error(t, err)
}

func TestSessionTokenWrongSecretRejected(t *testing.T) {
	issued, err := newSessionManager("secret-a").Issue(1, "myinsta")
	require.NoError(t, err)

	_, _, err = newSessionManager("secret-b").Verify(issued)
	assert.Error(t, err)
}

func TestSessionTokenExpiredRejected(t *testing.T) {
	secret := "test-secret"
	now := time.Now()
	claims := sessionClaims{
		Slug: "myinsta",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(1),
			IssuedAt:  jwt.NewNumericDate(now.Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, _, err = newSessionManager(secret).Verify(expired)
	assert.Error(t, err)
}

func TestSessionTokenCarriesExpiry(t *testing.T) {
	sessions := newSessionManager("test-secret")

	token, err := sessions.Issue(1, "myinsta")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(*sessionClaims)
	require.NotNil(t, claims.ExpiresAt)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 23*time.Hour)
	assert.LessOrEqual(t, ttl, 24*time.Hour)
	assert.NotEmpty(t, claims.ID)
}
