// Package security provides bearer-token authentication for the profile API.
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidToken is returned for missing, malformed, expired or tampered
// bearer tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated identity inside a bearer token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService issues and validates HMAC-signed bearer tokens.
type AuthService struct {
	secret     []byte
	expiration time.Duration
	logger     *zap.Logger
}

// NewAuthService creates the auth service from configuration.
func NewAuthService(cfg *config.Config, logger *zap.Logger) *AuthService {
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		// Development fallback; config validation rejects this in production.
		secret = "platewise-dev-secret"
	}
	expiration := cfg.Auth.JWTExpiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &AuthService{
		secret:     []byte(secret),
		expiration: expiration,
		logger:     logger.Named("auth"),
	}
}

// GenerateToken issues a signed bearer token for the user.
func (a *AuthService) GenerateToken(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			Issuer:    "platewise",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (a *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		a.logger.Debug("token validation failed", zap.Error(err))
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
