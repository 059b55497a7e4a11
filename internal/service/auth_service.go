package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService. The vault has exactly one
// operator, provisioned through configuration rather than a registration
// flow; a login exchanges the operator credentials for a JWT bound to the
// operator's on-chain address.
type AuthServiceImpl struct {
	username     string
	passwordHash string
	address      string
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(username, passwordHash, address string, hashSvc ports.HashService, tokenSvc ports.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		username:     username,
		passwordHash: passwordHash,
		address:      address,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
	}
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(s.address)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
