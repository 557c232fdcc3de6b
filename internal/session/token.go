package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the access token's registered claims without verifying
// the signature (the client has no key material) and returns the expiry time.
// Used only for display; authorization decisions stay with the server.
func TokenExpiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("access token has no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}
