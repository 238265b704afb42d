package security

import (
	"testing"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(expiration time.Duration) *AuthService {
	return NewAuthService(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret-key-for-testing-only",
			JWTExpiration: expiration,
		},
	}, zap.NewNop())
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	token, err := svc.GenerateToken("user-1", "alex@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
	assert.Equal(t, "platewise", claims.Issuer)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := newTestAuthService(time.Hour)
	verifier := NewAuthService(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "a-different-secret-entirely"},
	}, zap.NewNop())

	token, err := issuer.GenerateToken("user-1", "alex@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	// Built directly so the constructor's expiration floor does not apply.
	svc := &AuthService{
		secret:     []byte("test-secret-key-for-testing-only"),
		expiration: -time.Minute,
		logger:     zap.NewNop(),
	}

	token, err := svc.GenerateToken("user-1", "alex@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingSecretFallsBackInDevelopment(t *testing.T) {
	svc := NewAuthService(&config.Config{}, zap.NewNop())

	token, err := svc.GenerateToken("user-1", "alex@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
