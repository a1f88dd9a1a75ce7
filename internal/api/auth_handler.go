package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tanachai/bookstore-api/internal/api/shared"
	"github.com/tanachai/bookstore-api/internal/service"
	"github.com/tanachai/bookstore-api/internal/service/auth"
	"github.com/tanachai/bookstore-api/internal/store"
)

// dummyBcryptHash is a valid bcrypt hash ("password", cost 10) compared
// against when the email is unknown, so the login path spends roughly the
// same time whether or not the user exists.
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService      service.UserService
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userService:      userService,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Register handles POST /api/register.
//
// Outcomes: 201 with a token on success, 400 for malformed or invalid
// bodies, 409 when the email is already registered, 500 otherwise. The
// three failure classes are deliberately distinct status codes.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(err))
			return
		}
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// Login handles POST /api/login.
//
// An unknown email and a wrong password produce byte-identical 401
// responses; neither the body nor (thanks to the dummy hash comparison)
// the response time reveals which one failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn a hash comparison anyway before rejecting.
			_ = h.passwordVerifier.Compare(dummyBcryptHash, req.Password)
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				GetSafeErrorMessage(auth.ErrInvalidCredentials))
			return
		}
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			GetSafeErrorMessage(auth.ErrInvalidCredentials))
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
