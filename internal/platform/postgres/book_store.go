package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/platform/logger"
	"github.com/tanachai/bookstore-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, log *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: log.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface.
var _ store.BookStore = (*PostgresBookStore)(nil)

// List implements store.BookStore.List.
// It returns every book in the catalog ordered by ID. Store failures are
// returned to the caller; an empty catalog is an empty slice, so "no
// books" and "store broken" stay distinguishable.
func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, author, price, created_at, updated_at
		FROM books
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list books",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.Name,
			&book.Author,
			&book.Price,
			&book.CreatedAt,
			&book.UpdatedAt,
		); err != nil {
			log.Error("failed to scan book row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating book rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return books, nil
}

// GetByID implements store.BookStore.GetByID.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, author, price, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Name,
		&book.Author,
		&book.Price,
		&book.CreatedAt,
		&book.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return nil, MapError(err)
	}

	return &book, nil
}

// Create implements store.BookStore.Create.
// It validates the book, inserts it, and populates the generated ID.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now

	query := `
		INSERT INTO books (name, author, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		book.Name,
		book.Author,
		book.Price,
		book.CreatedAt,
		book.UpdatedAt,
	).Scan(&book.ID)

	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("name", book.Name))
		return MapError(err)
	}

	log.Info("book created successfully",
		slog.Int64("book_id", book.ID),
		slog.String("name", book.Name))
	return nil
}

// Update implements store.BookStore.Update.
// The UPDATE is unconditional: zero rows affected means the ID does not
// exist, which is reported as success per the store contract.
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("book_id", book.ID))
		return err
	}

	book.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE books
		SET name = $1, author = $2, price = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		book.Name,
		book.Author,
		book.Price,
		book.UpdatedAt,
		book.ID,
	)
	if err != nil {
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", book.ID))
		return MapError(err)
	}

	if rows, err := result.RowsAffected(); err == nil {
		log.Debug("book update executed",
			slog.Int64("book_id", book.ID),
			slog.Int64("rows_affected", rows))
	}

	return nil
}

// Delete implements store.BookStore.Delete.
// The DELETE is unconditional; a missing ID is a no-op success.
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM books WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return MapError(err)
	}

	if rows, err := result.RowsAffected(); err == nil {
		log.Debug("book delete executed",
			slog.Int64("book_id", id),
			slog.Int64("rows_affected", rows))
	}

	return nil
}

// WithTx implements store.BookStore.WithTx.
func (s *PostgresBookStore) WithTx(tx *sql.Tx) store.BookStore {
	return &PostgresBookStore{
		db:     tx,
		logger: s.logger,
	}
}
