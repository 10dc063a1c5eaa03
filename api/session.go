package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"linkbio-backend/errs"
)

// sessionTTL bounds how long an issued editor session stays valid.
const sessionTTL = 24 * time.Hour

type sessionClaims struct {
	Slug string `json:"slug"`
	jwt.RegisteredClaims
}

// sessionManager issues and verifies the signed tokens that gate editor
// routes. The token replaces the client-trusted timestamp flag of older
// deployments: every mutating request is re-checked server-side.
type sessionManager struct {
	secret []byte
}

func newSessionManager(secret string) sessionManager {
	return sessionManager{secret: []byte(secret)}
}

// Issue builds an HS256 token for the authenticated profile, valid for 24h.
func (m sessionManager) Issue(profileID int, slug string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Slug: slug,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(profileID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses the token and validates signature and expiry. It returns the
// profile identity the token was issued for.
func (m sessionManager) Verify(token string) (profileID int, slug string, err error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, "", errs.NewUnauthorizedError("invalid or expired session")
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return 0, "", errs.NewUnauthorizedError("invalid or expired session")
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, "", errs.NewUnauthorizedError("invalid or expired session")
	}

	return id, claims.Slug, nil
}
