package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 30 * 24 * time.Hour

func newTestService(now time.Time) *JWTService {
	svc := NewJWTService("test-secret", testTTL)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", testTTL)

	token, err := svc.GenerateToken("user-1", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, time.Now().Add(testTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_ValidUntilExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := newTestService(issuedAt).GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = newTestService(issuedAt.Add(testTTL - time.Minute)).ValidateToken(token)
	assert.NoError(t, err, "token must verify inside its validity window")

	_, err = newTestService(issuedAt.Add(testTTL + time.Minute)).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "token must fail once expired")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", testTTL).GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", testTTL).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", testTTL)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", testTTL).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RequiresUserID(t *testing.T) {
	claims := Claims{
		Role: "user",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", testTTL).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingSecret(t *testing.T) {
	svc := NewJWTService("", testTTL)
	assert.False(t, svc.HasSecret())

	_, err := svc.GenerateToken("user-1", "user")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = svc.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
