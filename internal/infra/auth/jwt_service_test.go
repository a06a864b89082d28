package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/config"
	"authapi/internal/domain/service"
)

func tokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Token.SecretKey = "test-secret-key"
	cfg.Token.AccessTokenTTLSeconds = 900
	cfg.Token.RefreshTokenTTLSeconds = 604800

	return cfg
}

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(tokenConfig())
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return now }

	return jwtSvc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := tokenConfig()
	cfg.Token.SecretKey = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssuePairAndVerify(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)
	accountID := uuid.New()

	pair, err := svc.IssuePair(accountID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, pair.ID)
	assert.Equal(t, accountID, pair.AccountID)
	assert.Equal(t, now.Add(15*time.Minute).Unix(), pair.AccessExpiresAt.Unix())
	assert.Equal(t, now.Add(7*24*time.Hour).Unix(), pair.RefreshExpiresAt.Unix())
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, accountID.String(), claims.AccountID)
		assert.True(t, claims.ExpiresAt.After(now))
	}
}

func TestJWTService_Verify_ExpiryBoundary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	svc := newTestJWTService(t, now)
	accountID := uuid.New()

	// exp == now is already expired; exp == now + 1s is still valid.
	expired, err := svc.sign(accountID, now)
	require.NoError(t, err)
	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, service.ErrTokenExpired)

	valid, err := svc.sign(accountID, now.Add(time.Second))
	require.NoError(t, err)
	claims, err := svc.Verify(valid)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.AccountID)
}

func TestJWTService_Verify_InvalidSignature(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)

	pair, err := svc.IssuePair(uuid.New())
	require.NoError(t, err)

	other := newTestJWTService(t, now)
	other.secret = []byte("a-different-secret")

	_, err = other.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidSignature)
}

func TestJWTService_Verify_MalformedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, service.ErrMalformedClaims)
}

func TestJWTService_Verify_MissingClaims(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": now.Add(time.Hour).Unix(),
	})
	signed, err := noSub.SignedString(svc.secret)
	require.NoError(t, err)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, service.ErrMalformedClaims)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	signed, err = noExp.SignedString(svc.secret)
	require.NoError(t, err)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, service.ErrMalformedClaims)
}

func TestJWTService_Verify_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(svc.secret)
	require.NoError(t, err)

	// Method mismatch reads as a wrong-key failure, not malformed claims.
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, service.ErrInvalidSignature)
	assert.NotErrorIs(t, err, service.ErrMalformedClaims)
}
