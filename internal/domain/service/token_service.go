package service

import "github.com/golang-jwt/jwt/v5"

// Claims are the JWT claims carried by an auth token. Subject holds the username.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService signs and validates auth tokens.
type TokenService interface {
	// Issue signs a token bound to username.
	Issue(username string) (string, error)

	// Parse validates the signature and returns the username the token is bound to.
	Parse(token string) (string, error)
}
