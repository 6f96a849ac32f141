// Package auth implements issuing and verifying the signed access tokens.
// A token is self-describing: subject, issue time and expiry live in the
// signed payload, so verification needs no store lookup.
package auth

import (
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims plus the username the token was
// issued for.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken builds and signs an HS256 token for the given username.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken parses and verifies the token and returns the
// embedded username. Malformed input, a wrong signature and an expired
// token all yield an error.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}

// ValidateToken reports whether the token has a valid signature and has not
// expired. It never panics on malformed input.
func ValidateToken(tokenString string, secretKey []byte) bool {
	_, err := GetUsernameFromToken(tokenString, secretKey)
	return err == nil
}
