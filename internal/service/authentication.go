package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"storefront/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of every issued token.
const TokenTTL = 30 * 24 * time.Hour

// CustomClaims carries the user identifier and nothing else. Admin status is
// deliberately absent: admin-gated routes resolve it from the user store on
// every request so a revoked admin loses access without token invalidation.
type CustomClaims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

// AuthenticateUser checks a plaintext password against the stored hash.
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

// IssueAccessToken signs a token for the given user id. The secret is shared
// with every service that verifies tokens; no verifying service calls back
// here.
func IssueAccessToken(userID int, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken validates signature and expiry against the shared secret.
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
