package utils

import (
	"errors"
	"time"

	"go-splendor/config"

	"github.com/golang-jwt/jwt/v4"
)

const (
	accessIssuer  = "gin-access"
	refreshIssuer = "gin-refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager 签发和校验 access/refresh token，两种 token 使用不同的密钥
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(cfg config.Config) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.JWTAccessSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		now:           time.Now,
	}
}

func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return m.sign(userID, accessIssuer, m.accessTTL, m.accessSecret)
}

func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return m.sign(userID, refreshIssuer, m.refreshTTL, m.refreshSecret)
}

func (m *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, accessIssuer, m.accessSecret)
}

func (m *TokenManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, refreshIssuer, m.refreshSecret)
}

func (m *TokenManager) sign(userID, issuer string, ttl time.Duration, secret []byte) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(tokenStr, issuer string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Issuer != issuer || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
