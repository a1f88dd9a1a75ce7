package mocks

import (
	"context"

	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/service"
)

// MockUserService implements service.UserService on top of a
// MockUserStore, skipping the transaction wrapper the real service uses.
type MockUserService struct {
	Store *MockUserStore

	// Error-injection fields.
	RegisterErr error
	GetErr      error
	DeleteErr   error
}

// NewMockUserService creates a MockUserService backed by a fresh store.
func NewMockUserService() *MockUserService {
	return &MockUserService{Store: NewMockUserStore()}
}

// Ensure MockUserService implements service.UserService.
var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService.Register.
func (m *MockUserService) Register(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}

	user, err := domain.NewUser(email, password)
	if err != nil {
		return nil, err
	}

	if err := m.Store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser implements service.UserService.GetUser.
func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Store.GetByID(ctx, userID)
}

// DeleteUser implements service.UserService.DeleteUser.
func (m *MockUserService) DeleteUser(ctx context.Context, userID int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	return m.Store.Delete(ctx, userID)
}
