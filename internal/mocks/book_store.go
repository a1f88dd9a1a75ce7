package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/store"
)

// MockBookStore is an in-memory implementation of store.BookStore.
type MockBookStore struct {
	mu     sync.Mutex
	books  map[int64]*domain.Book
	nextID int64

	// Error-injection fields. When set, the corresponding method
	// returns the error without touching state.
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

// NewMockBookStore creates an empty MockBookStore.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		books:  make(map[int64]*domain.Book),
		nextID: 1,
	}
}

// Ensure MockBookStore implements store.BookStore.
var _ store.BookStore = (*MockBookStore)(nil)

// List implements store.BookStore.List.
func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	books := make([]*domain.Book, 0, len(m.books))
	for id := int64(1); id < m.nextID; id++ {
		if book, ok := m.books[id]; ok {
			copied := *book
			books = append(books, &copied)
		}
	}
	return books, nil
}

// GetByID implements store.BookStore.GetByID.
func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	copied := *book
	return &copied, nil
}

// Create implements store.BookStore.Create.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	if err := book.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	book.ID = m.nextID
	m.nextID++
	copied := *book
	m.books[book.ID] = &copied
	return nil
}

// Update implements store.BookStore.Update. A missing ID is a no-op
// success, mirroring the real store.
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	if err := book.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.books[book.ID]; ok {
		existing.Name = book.Name
		existing.Author = book.Author
		existing.Price = book.Price
	}
	return nil
}

// Delete implements store.BookStore.Delete. A missing ID is a no-op
// success.
func (m *MockBookStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.books, id)
	return nil
}

// WithTx implements store.BookStore.WithTx by returning the same mock.
func (m *MockBookStore) WithTx(tx *sql.Tx) store.BookStore {
	return m
}

// Len returns the number of stored books.
func (m *MockBookStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.books)
}
