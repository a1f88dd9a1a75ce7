package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/store"
)

// UserService provides user-related operations on top of the UserStore.
type UserService interface {
	// Register creates a new user with the given email and plaintext
	// password. Returns store.ErrEmailExists if the email is taken and
	// domain validation errors for malformed input.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// DeleteUser deletes a user by their ID. Deleting a non-existent
	// user is a no-op success, matching the store contract.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, db *sql.DB, log *slog.Logger) *UserServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    log.With("component", "user_service"),
	}
}

// Ensure UserServiceImpl implements UserService.
var _ UserService = (*UserServiceImpl)(nil)

// Register creates a new user inside a transaction. The store hashes the
// password and relies on the unique constraint to reject duplicates, so
// there is no check-then-insert window.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		s.logger.Debug("user registration failed validation",
			"error", err)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)
		return txStore.Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register an existing email")
		} else {
			s.logger.Error("failed to save user to database",
				"error", err)
		}
		return nil, err
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID)

	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found",
				"user_id", userID)
			return nil, err
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// DeleteUser deletes a user by their ID inside a transaction.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)
		return txStore.Delete(ctx, userID)
	})
	if err != nil {
		s.logger.Error("failed to delete user",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted successfully",
		"user_id", userID)

	return nil
}
