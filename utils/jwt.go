package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"

	"thalibook/config"
)

// ActorClaims are the claims the booking API needs from a bearer token.
// Token issuance lives in the surrounding auth system; this service only
// validates.
type ActorClaims struct {
	Subject string
	Role    string
}

// ParseActorToken validates a token string and extracts the actor claims.
func ParseActorToken(tokenString string) (*ActorClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, errors.New("token missing sub or role claim")
	}
	return &ActorClaims{Subject: sub, Role: role}, nil
}
