package utils

import (
	"testing"

	"github.com/golang-jwt/jwt"

	"thalibook/config"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestParseActorToken(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()
	config.AppConfig.JWTSecret = "test-secret"

	t.Run("valid token", func(t *testing.T) {
		s := signToken(t, "test-secret", jwt.MapClaims{"sub": "u1", "role": "CUSTOMER"})
		claims, err := ParseActorToken(s)
		if err != nil {
			t.Fatalf("ParseActorToken: %v", err)
		}
		if claims.Subject != "u1" || claims.Role != "CUSTOMER" {
			t.Errorf("claims = %+v, want sub u1 role CUSTOMER", claims)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		s := signToken(t, "other-secret", jwt.MapClaims{"sub": "u1", "role": "CUSTOMER"})
		if _, err := ParseActorToken(s); err == nil {
			t.Fatal("ParseActorToken accepted a token signed with the wrong secret")
		}
	})

	t.Run("missing role claim", func(t *testing.T) {
		s := signToken(t, "test-secret", jwt.MapClaims{"sub": "u1"})
		if _, err := ParseActorToken(s); err == nil {
			t.Fatal("ParseActorToken accepted a token without a role claim")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseActorToken("not-a-token"); err == nil {
			t.Fatal("ParseActorToken accepted garbage")
		}
	})
}
