package usecase

import (
	"plateshare-server/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the caller's email.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
	// Enabled is false when no signing secret is configured; callers then
	// fall back to the client-supplied email.
	Enabled() bool
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

// NewTokenValidator accepts a nil service, which yields a disabled validator.
func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) Enabled() bool {
	return t.jwtService != nil
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	if t.jwtService == nil {
		return "", jwt.ErrInvalidToken
	}
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
