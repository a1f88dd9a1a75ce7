package mocks

import (
	"context"
	"time"

	"github.com/tanachai/bookstore-api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string

	// ExpiresAt is returned by GenerateToken alongside Token.
	ExpiresAt time.Time

	// Claims is returned by ValidateToken when ValidateErr is nil.
	Claims *auth.Claims

	// Err is returned by GenerateToken.
	Err error

	// ValidateErr is returned by ValidateToken.
	ValidateErr error
}

// Ensure MockJWTService implements auth.JWTService.
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken.
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	userID int64,
	email string,
) (string, time.Time, error) {
	if m.Err != nil {
		return "", time.Time{}, m.Err
	}
	return m.Token, m.ExpiresAt, nil
}

// ValidateToken implements auth.JWTService.ValidateToken.
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return &auth.Claims{}, nil
}
