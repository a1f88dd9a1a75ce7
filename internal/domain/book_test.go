package domain

import (
	"errors"
	"testing"
)

func TestNewBook(t *testing.T) {
	book, err := NewBook("The Go Programming Language", "Alan A. A. Donovan", 39.99)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if book.ID != 0 {
		t.Errorf("Expected zero ID before insert, got %d", book.ID)
	}

	if book.Name != "The Go Programming Language" {
		t.Errorf("Unexpected name: %s", book.Name)
	}

	if book.Author != "Alan A. A. Donovan" {
		t.Errorf("Unexpected author: %s", book.Author)
	}

	if book.Price != 39.99 {
		t.Errorf("Unexpected price: %f", book.Price)
	}

	if book.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if book.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}
}

func TestNewBookValidation(t *testing.T) {
	tests := []struct {
		name     string
		bookName string
		author   string
		price    float64
		wantErr  error
	}{
		{"empty name", "", "Author", 10, ErrEmptyBookName},
		{"empty author", "Name", "", 10, ErrEmptyBookAuthor},
		{"zero price", "Name", "Author", 0, ErrNonPositivePrice},
		{"negative price", "Name", "Author", -5.50, ErrNonPositivePrice},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBook(tc.bookName, tc.author, tc.price)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBookValidate(t *testing.T) {
	validBook := Book{
		ID:     1,
		Name:   "Clean Code",
		Author: "Robert C. Martin",
		Price:  29.95,
	}

	if err := validBook.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// A zero price is a validation failure in its own right, not a
	// missing field.
	zeroPrice := validBook
	zeroPrice.Price = 0
	if err := zeroPrice.Validate(); !errors.Is(err, ErrNonPositivePrice) {
		t.Errorf("Expected error %v, got %v", ErrNonPositivePrice, err)
	}

	// A very small positive price is still valid.
	cheapBook := validBook
	cheapBook.Price = 0.01
	if err := cheapBook.Validate(); err != nil {
		t.Errorf("Expected no error for small positive price, got %v", err)
	}
}
