package auth

import (
	"errors"
	"fmt"
	"time"

	"promoservice/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set embedded in a bearer token.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the request-scoped authenticated identity derived from a
// verified token. It lives for a single request and is never persisted.
type Identity struct {
	ID       int64
	Username string
	Role     entity.Role
}

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// TokenManager issues and decodes signed, expiring bearer tokens.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenManager configures the token codec. The secret and algorithm
// come from configuration; only HMAC algorithms are accepted.
func NewTokenManager(secret, algorithm string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue produces a signed token embedding the identity plus issued-at and
// expiry timestamps.
func (m *TokenManager) Issue(userID int64, username string, role entity.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Decode verifies a token string and returns its claims, or nil when the
// token is malformed, signed with an unexpected algorithm, tampered with,
// or expired. It never returns an error: invalid tokens are a single
// outcome for callers.
func (m *TokenManager) Decode(tokenString string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != m.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}
