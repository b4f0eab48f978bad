package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type JWTClaims struct {
	Session string `json:"session"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints the token handed out after the password gate.
// There are no per-user accounts; one valid session looks like any other.
func GenerateSessionToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := JWTClaims{
		Session: "dashboard",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret string, tokenStr string) (*JWTClaims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := tok.Claims.(*JWTClaims); ok && tok.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token claims")
}
