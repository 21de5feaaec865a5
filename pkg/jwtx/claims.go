package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants for the rotating session pair.
// These provide sensible security defaults but can be overridden per-service.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	// Short-lived for security - typical range is 15m to 1h.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	// Longer-lived for user convenience - typical range is 7d to 30d.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// typeRefresh is the discriminator value carried in the signed payload of
// refresh tokens. Access tokens carry no type field at all.
const typeRefresh = "refresh"

// Identity is the minimal verified user payload minted into every token.
// It is immutable once signed; callers re-derive it from the user store
// when freshness matters (e.g. the refresh flow).
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Claims are the session-token claims. The user ID rides in the registered
// "sub" claim; email and display name are custom fields so route handlers
// can resolve a caller without a store round trip.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`

	// TokenType marks refresh-class tokens ("refresh"). Its absence marks
	// an access token. Verify enforces this both ways so an access token
	// can never be replayed against the refresh endpoint.
	TokenType string `json:"type,omitempty"`
}

// newClaims builds minimally-correct claims for the given identity and kind.
func newClaims(id Identity, kind Kind, issuer string, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: id.Email,
		Name:  id.Name,
	}
	if kind == KindRefresh {
		c.TokenType = typeRefresh
	}
	return c
}

// Identity extracts the identity payload back out of verified claims.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID: c.Subject,
		Email:  c.Email,
		Name:   c.Name,
	}
}
