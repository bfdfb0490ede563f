package auth

import (
	"strings"
	"testing"
	"time"

	"promoservice/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-secret", "HS256", ttl)
	require.NoError(t, err)
	return m
}

func TestNewTokenManagerValidation(t *testing.T) {
	_, err := NewTokenManager("", "HS256", time.Hour)
	assert.Error(t, err, "empty secret must be rejected")

	_, err = NewTokenManager("secret", "RS256", time.Hour)
	assert.Error(t, err, "non-HMAC algorithm must be rejected")

	_, err = NewTokenManager("secret", "none", time.Hour)
	assert.Error(t, err)
}

func TestIssueDecodeRoundTrip(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, err := m.Issue(42, "alice", entity.RoleManager)
	require.NoError(t, err)

	claims := m.Decode(token)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "manager", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestDecodeExpiredToken(t *testing.T) {
	m := newTestManager(t, time.Hour)
	// craft an already-expired token with the same secret and method
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   7,
		Username: "ghost",
		Role:     "employee",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.Nil(t, m.Decode(tokenString))
}

func TestDecodeTamperedToken(t *testing.T) {
	m := newTestManager(t, time.Hour)
	token, err := m.Issue(1, "bob", entity.RoleEmployee)
	require.NoError(t, err)

	// corrupt a byte in the middle of the signature segment; the final
	// base64url character only carries padding bits, so changing it does
	// not always change the decoded signature
	dot := strings.LastIndex(token, ".")
	require.Greater(t, len(token)-dot, 2, "signature segment missing")
	pos := dot + 1 + (len(token)-dot-1)/2
	var flipped byte = 'A'
	if token[pos] == 'A' {
		flipped = 'B'
	}
	tampered := token[:pos] + string(flipped) + token[pos+1:]
	assert.Nil(t, m.Decode(tampered))
}

func TestDecodeMalformedToken(t *testing.T) {
	m := newTestManager(t, time.Hour)
	for _, bad := range []string{"", "garbage", "a.b", strings.Repeat("x", 300)} {
		assert.Nil(t, m.Decode(bad), "token %q must decode to nil", bad)
	}
}

func TestDecodeRejectsForeignAlgorithm(t *testing.T) {
	m := newTestManager(t, time.Hour)

	// same secret, different HMAC algorithm: must be rejected on decode
	other := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID:   1,
		Username: "eve",
		Role:     "director",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := other.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.Nil(t, m.Decode(tokenString))
}
