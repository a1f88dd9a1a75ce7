package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tanachai/bookstore-api/internal/api/shared"
	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/service"
	"github.com/tanachai/bookstore-api/internal/store"
)

// UserHandler handles user account API requests. All of its routes sit
// behind the JWT middleware, and a user may only operate on their own
// record.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		logger:      log.With(slog.String("component", "user_handler")),
	}
}

// resolveOwnUserID extracts the authenticated user ID and the path ID,
// writing an error response and returning false unless both are present
// and refer to the same user.
func (h *UserHandler) resolveOwnUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		h.logger.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			GetSafeErrorMessage(domain.ErrUnauthorized))
		return 0, false
	}

	pathID, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}

	if pathID != userID {
		shared.RespondWithError(w, r, http.StatusForbidden,
			GetSafeErrorMessage(domain.ErrForbidden))
		return 0, false
	}

	return pathID, true
}

// GetUser handles GET /api/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resolveOwnUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to fetch user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}.
// Deleting an already-removed account succeeds with no effect.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resolveOwnUserID(w, r)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to delete user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.MessageResponse{Message: "User deleted successfully"})
}
