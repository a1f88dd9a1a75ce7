package store

import (
	"context"
	"database/sql"

	"github.com/tanachai/bookstore-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// List returns all books in the catalog, ordered by ID.
	// An empty catalog yields an empty slice, not an error; a store
	// failure is surfaced to the caller rather than swallowed.
	List(ctx context.Context) ([]*domain.Book, error)

	// GetByID retrieves a book by its primary key.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// Create saves a new book to the store after validating it.
	// On success the book's ID is populated with the generated key.
	// Returns validation errors from the domain Book if data is invalid.
	Create(ctx context.Context, book *domain.Book) error

	// Update replaces the name, author, and price of the book with the
	// given ID. Updating a book that does not exist is a no-op and is
	// not an error.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book by its ID. Deleting a book that does not
	// exist is a no-op and is not an error.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new BookStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) BookStore
}
