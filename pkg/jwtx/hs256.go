package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
)

// Issuer mints signed bearer tokens over a subject/role pair.
type Issuer interface {
	Issue(subject, role string) (string, error)
}

// Verifier validates a bearer token and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a shared secret. It is pure and
// CPU-bound; a single instance is safe for concurrent use.
type HS256 struct {
	secret []byte
	ttl    time.Duration

	// now is overridable for expiry tests.
	now func() time.Time
}

func NewHS256(secret string, ttl time.Duration) *HS256 {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &HS256{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue produces a signed token embedding the subject id and role with the
// configured expiry.
func (h *HS256) Issue(subject, role string) (string, error) {
	claims := NewClaims(subject, role, h.ttl, h.now().UTC())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// Verify parses and validates raw, failing on malformed structure, a bad
// signature, or an expired timestamp.
func (h *HS256) Verify(raw string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	var claims Claims
	_, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
