package domain

import (
	"errors"
	"time"
)

// Book validation errors.
var (
	ErrEmptyBookName    = errors.New("book name cannot be empty")
	ErrEmptyBookAuthor  = errors.New("book author cannot be empty")
	ErrNonPositivePrice = errors.New("book price must be greater than zero")
)

// Book represents a single title in the catalog.
type Book struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBook creates a Book with the given fields and sets the timestamps.
// The ID is assigned by the store on insert. Returns an error if
// validation fails.
func NewBook(name, author string, price float64) (*Book, error) {
	now := time.Now().UTC()
	book := &Book{
		Name:      name,
		Author:    author,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
// Returns an error if any field fails validation.
//
// Price is checked explicitly against zero rather than for "truthiness":
// a zero price is rejected with ErrNonPositivePrice, not conflated with a
// missing field.
func (b *Book) Validate() error {
	if b.Name == "" {
		return ErrEmptyBookName
	}

	if b.Author == "" {
		return ErrEmptyBookAuthor
	}

	if b.Price <= 0 {
		return ErrNonPositivePrice
	}

	return nil
}
