package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind selects the secret key space and expiry duration for a token.
type Kind int

const (
	// KindAccess tokens authenticate API calls. Short-lived, stateless.
	KindAccess Kind = iota
	// KindRefresh tokens only mint new access/refresh pairs. They are
	// signed with a distinct secret and carry an explicit type field.
	KindRefresh
)

func (k Kind) String() string {
	if k == KindRefresh {
		return "refresh"
	}
	return "access"
}

// Verification failures. These are deliberately distinct so callers can log
// the real cause, but handlers must collapse them all into one uniform 401 -
// distinguishing expired-but-valid from forged tokens in the response would
// hand an attacker an oracle.
var (
	ErrMalformed        = errors.New("jwtx: malformed token")
	ErrInvalidSignature = errors.New("jwtx: invalid signature")
	ErrExpired          = errors.New("jwtx: token expired")
	ErrWrongKind        = errors.New("jwtx: wrong token kind")
)

// Codec signs and verifies the compact, expiring identity tokens that make
// up a session. There is no revocation store: a token is valid exactly as
// long as its signature checks out and its expiry has not passed, which
// bounds the blast radius of a stolen token to its TTL.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte

	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now is the clock used for minting and expiry validation. Injectable
	// so tests can simulate expiry instead of sleeping.
	Now func() time.Time
}

// NewCodec builds a Codec from the two signing secrets. An empty refresh
// secret derives one from the access secret, matching the deployment
// default, though operators should configure an independent secret.
func NewCodec(accessSecret, refreshSecret, issuer string) *Codec {
	if refreshSecret == "" {
		refreshSecret = accessSecret + "_refresh"
	}
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		Issuer:        issuer,
		AccessTTL:     DefaultAccessTokenTTL,
		RefreshTTL:    DefaultRefreshTokenTTL,
		Now:           time.Now,
	}
}

func (c *Codec) secret(kind Kind) []byte {
	if kind == KindRefresh {
		return c.refreshSecret
	}
	return c.accessSecret
}

func (c *Codec) ttl(kind Kind) time.Duration {
	if kind == KindRefresh {
		return c.RefreshTTL
	}
	return c.AccessTTL
}

func (c *Codec) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Mint signs a new token of the given kind for the identity.
func (c *Codec) Mint(id Identity, kind Kind) (string, error) {
	claims := newClaims(id, kind, c.Issuer, c.ttl(kind), c.now())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret(kind))
}

// Verify parses and validates a token against the secret and discriminator
// of the expected kind. It returns the embedded identity on success, or one
// of ErrMalformed, ErrInvalidSignature, ErrExpired, ErrWrongKind.
func (c *Codec) Verify(token string, kind Kind) (Identity, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidSignature
		}
		return c.secret(kind), nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return Identity{}, classifyParseError(err)
	}
	if !parsed.Valid {
		return Identity{}, ErrInvalidSignature
	}

	// Enforce the kind discriminator both ways. The secrets already differ
	// per kind, but the explicit check keeps an access token from passing
	// as refresh even if the two secrets are ever configured identically.
	switch kind {
	case KindRefresh:
		if claims.TokenType != typeRefresh {
			return Identity{}, ErrWrongKind
		}
	default:
		if claims.TokenType != "" {
			return Identity{}, ErrWrongKind
		}
	}

	return claims.Identity(), nil
}

// classifyParseError maps golang-jwt failures onto our sentinel errors.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return ErrInvalidSignature
	default:
		return ErrInvalidSignature
	}
}
