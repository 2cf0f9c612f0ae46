package services

import (
	"fmt"
	"time"

	"streaming-catalog/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity bound to an access token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 access tokens and holds the
// configured admin credentials. Tokens are stateless; logout never revokes.
type TokenManager struct {
	secret        []byte
	ttl           time.Duration
	adminUsername string
	adminPassword string
}

func NewTokenManager(cfg config.AuthConfig) (*TokenManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required but was empty")
	}

	return &TokenManager{
		secret:        []byte(cfg.JWTSecret),
		ttl:           cfg.TokenTTL,
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
	}, nil
}

// Login checks the credentials against the configured admin pair by exact
// string match and issues a token on success.
func (m *TokenManager) Login(username, password string) (string, error) {
	if username != m.adminUsername || password != m.adminPassword {
		return "", ErrInvalidCredentials
	}
	return m.GenerateToken(username)
}

func (m *TokenManager) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature and expiry and returns the claims.
func (m *TokenManager) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsAdmin reports whether the bound identity is the configured admin. A
// validly signed token for any other identity is still rejected.
func (m *TokenManager) IsAdmin(username string) bool {
	return username == m.adminUsername
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}
