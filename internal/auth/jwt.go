package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/blog-backend/internal/domain"
)

// AccessTokenTTL is the lifetime of every issued access token.
const AccessTokenTTL = 8 * time.Hour

// MinSecretLength is the minimum accepted HS256 signing secret length in bytes.
const MinSecretLength = 32

// ErrWeakSecret is returned by NewTokenManager for a missing or short secret.
var ErrWeakSecret = fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLength)

// Identity is what a token is issued for.
type Identity struct {
	Email string
	Roles []string
}

// Claims is the payload of an access token.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the claims carry the given role slug.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// TokenManager issues and verifies HS256 access tokens.
type TokenManager struct {
	secret []byte
	clock  clockwork.Clock
}

// NewTokenManager creates a TokenManager. A nil clock means the real clock.
func NewTokenManager(secret []byte, clock clockwork.Clock) (*TokenManager, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	s := make([]byte, len(secret))
	copy(s, secret)

	return &TokenManager{secret: s, clock: clock}, nil
}

// Issue creates a signed token with the email as subject, the role slugs as
// claims, and an expiry AccessTokenTTL from now.
func (m *TokenManager) Issue(id Identity) (string, error) {
	// NumericDate drops sub-second precision; align now with it so the token
	// stays valid for the full TTL.
	now := m.clock.Now().Truncate(jwt.TimePrecision)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
		Roles: id.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses token and checks its signature and expiry. Every failure
// wraps domain.ErrUnauthorized.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("parse token: %v: %w", err, domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", domain.ErrUnauthorized)
	}

	return claims, nil
}
