package api

import (
	"errors"
	"net/http"

	"github.com/tanachai/bookstore-api/internal/api/shared"
	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/store"
)

// BookHandler handles book catalog API requests.
type BookHandler struct {
	bookStore store.BookStore
}

// NewBookHandler creates a new BookHandler backed by the given store.
func NewBookHandler(bookStore store.BookStore) *BookHandler {
	return &BookHandler{
		bookStore: bookStore,
	}
}

// ListBooks handles GET /api/books.
// A store failure is a 500, not a silently empty list.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to list books", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// GetBook handles GET /api/books/{id}.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to fetch book", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// CreateBook handles POST /api/books.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req BookRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	book, err := domain.NewBook(req.Name, req.Author, *req.Price)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.bookStore.Create(r.Context(), book); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated,
		shared.MessageResponse{Message: "Book added successfully"})
}

// UpdateBook handles PUT /api/books/{id}.
// The update is a full replace of name, author, and price. Updating an
// ID that does not exist succeeds with no effect.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	book := &domain.Book{
		ID:     id,
		Name:   req.Name,
		Author: req.Author,
		Price:  *req.Price,
	}

	if err := h.bookStore.Update(r.Context(), book); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.MessageResponse{Message: "Book updated successfully"})
}

// DeleteBook handles DELETE /api/books/{id}.
// Deleting an ID that does not exist succeeds with no effect.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.bookStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to delete book", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.MessageResponse{Message: "Book deleted successfully"})
}
