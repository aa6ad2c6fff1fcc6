package utils

import (
	"errors"
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks
var ErrInvalidToken = errors.New("invalid session token")

// Claims carried by the session cookie. The identity itself lives server-side.
type Claims struct {
	SessionID            string `json:"sid"` // Redis session id
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT signs a token that points at the given session id
func GenerateJWT(sessionID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Expires together with the session
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a session token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.SessionID != "" {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
