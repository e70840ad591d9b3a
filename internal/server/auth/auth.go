// Package auth issues and verifies the bearer tokens protecting the admin
// API, and checks the admin password against its stored bcrypt hash.
package auth

import (
	"time"

	"github.com/dmitrijs2005/bookline/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims carries the standard registered claims plus the admin username.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken signs an HS256 token for the given admin username.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken parses and verifies a token, returning the admin
// username it was issued for. Expired, malformed or foreign-keyed tokens
// yield common.ErrInvalidToken.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// An empty hash never matches, which keeps login disabled until an admin
// password is configured.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
