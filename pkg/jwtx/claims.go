// Package jwtx issues and verifies the signed bearer tokens stationhub uses
// for authentication. Tokens are stateless: validity is determined purely by
// signature and expiry, so there is no server-side session record and no
// revocation path.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default access token lifetime when the deployment
// does not configure one.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the decoded payload of a stationhub bearer token: the subject
// (user ID), the user's role, issued-at and expiry.
type Claims struct {
	jwt.RegisteredClaims

	// Role the subject held when the token was issued, e.g. "admin".
	Role string `json:"role,omitempty"`
}

// NewClaims builds claims for a subject/role pair expiring after ttl.
func NewClaims(subject, role string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
}

// ValidateExpiry ensures the token hasn't expired.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
