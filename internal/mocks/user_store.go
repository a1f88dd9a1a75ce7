package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
// Passwords are "hashed" with a marker prefix so tests can assert that
// plaintext never reaches storage without paying for bcrypt.
type MockUserStore struct {
	mu      sync.Mutex
	users   map[int64]*domain.User
	byEmail map[string]int64
	nextID  int64

	// Error-injection fields.
	CreateErr error
	GetErr    error
	DeleteErr error
}

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:   make(map[int64]*domain.User),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

// Ensure MockUserStore implements store.UserStore.
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.Create.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return store.ErrEmailExists
	}

	user.ID = m.nextID
	m.nextID++
	user.HashedPassword = fmt.Sprintf("hashed:%s", user.Password)
	user.Password = ""

	copied := *user
	m.users[user.ID] = &copied
	m.byEmail[user.Email] = user.ID
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *m.users[id]
	return &copied, nil
}

// Delete implements store.UserStore.Delete. A missing ID is a no-op
// success.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if user, ok := m.users[id]; ok {
		delete(m.byEmail, user.Email)
		delete(m.users, id)
	}
	return nil
}

// WithTx implements store.UserStore.WithTx by returning the same mock.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// Len returns the number of stored users.
func (m *MockUserStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
