package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	got, err := TokenExpiry(signed)
	if err != nil {
		t.Fatalf("TokenExpiry() error: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("TokenExpiry() = %v, want %v", got, exp)
	}
}

func TestTokenExpiryErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not a jwt", "garbage"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TokenExpiry(tt.token); err == nil {
				t.Error("TokenExpiry() error = nil, want error")
			}
		})
	}
}

func TestTokenExpiryNoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "7"})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := TokenExpiry(signed); err == nil {
		t.Error("TokenExpiry() error = nil, want error for missing exp")
	}
}
