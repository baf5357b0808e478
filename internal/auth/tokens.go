package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

// SessionClaims carries the session id and account id inside the JWT.
// The token alone is never enough: the session id must still resolve to
// a live record, so server-side revocation works.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	AccountID string `json:"aid"`
}

// GenerateSessionToken mints a signed session JWT
func GenerateSessionToken(sessionID, accountID string, ttl time.Duration, key []byte) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		SessionID: sessionID,
		AccountID: accountID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a session JWT and returns its claims
func ParseSessionToken(tokenString string, key []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(SessionClaims), func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}
