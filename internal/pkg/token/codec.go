// Package token issues and verifies the signed session tokens that every
// protected request presents. Tokens are HS256 JWTs carrying only the user
// ID as subject; profile and role data are always re-read from the user
// store so tokens never grant stale privileges.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret is returned when the codec was built without a signing
	// secret. Both issuance and verification fail closed in that state.
	ErrNoSecret = errors.New("token: signing secret not configured")

	// ErrExpired is returned for tokens whose signature is authentic but
	// whose expiry has passed.
	ErrExpired = errors.New("token: expired")

	// ErrInvalid is returned for malformed, tampered or unsigned tokens.
	ErrInvalid = errors.New("token: invalid")
)

// Codec signs and verifies session tokens with a shared secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. ttl is the default token lifetime; values <= 0
// fall back to 24 hours.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user ID with the default lifetime.
func (c *Codec) Issue(userID string) (string, error) {
	return c.IssueTTL(userID, c.ttl)
}

// IssueTTL signs a token for the given user ID with an explicit lifetime.
func (c *Codec) IssueTTL(userID string, ttl time.Duration) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks the signature and expiry of a token and returns its subject
// (the user ID). Expired-but-authentic tokens report ErrExpired; anything
// else that fails reports ErrInvalid.
func (c *Codec) Verify(tokenString string) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrNoSecret
	}

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", ErrInvalid
	}

	return claims.Subject, nil
}
