package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanachai/bookstore-api/internal/api/shared"
	"github.com/tanachai/bookstore-api/internal/domain"
	"github.com/tanachai/bookstore-api/internal/mocks"
)

func newUserRouter(h *UserHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/users/{id}", h.GetUser)
	r.Delete("/api/users/{id}", h.DeleteUser)
	return r
}

// userRequest builds a request with the authenticated user ID in the
// context, as the auth middleware would.
func userRequest(method, path string, authedID int64) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if authedID != 0 {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, authedID)
		req = req.WithContext(ctx)
	}
	return req
}

func registerTestUser(t *testing.T, svc *mocks.MockUserService, email string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), email, "password123")
	require.NoError(t, err)
	return user
}

func TestGetUser(t *testing.T) {
	t.Run("user fetches their own record", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		user := registerTestUser(t, svc, "user@example.com")
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(
			http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), user.ID))

		require.Equal(t, http.StatusOK, rr.Code)

		var got domain.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "user@example.com", got.Email)

		// The hash must never appear in the response.
		assert.NotContains(t, rr.Body.String(), "hashed")
	})

	t.Run("missing context user ID is a 401", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(http.MethodGet, "/api/users/1", 0))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("accessing another user's record is a 403", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		user := registerTestUser(t, svc, "user@example.com")
		other := registerTestUser(t, svc, "other@example.com")
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(
			http.MethodGet, fmt.Sprintf("/api/users/%d", other.ID), user.ID))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid path ID is a 400", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(http.MethodGet, "/api/users/abc", 1))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("own record already deleted is a 404", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		user := registerTestUser(t, svc, "user@example.com")
		require.NoError(t, svc.DeleteUser(context.Background(), user.ID))
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(
			http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), user.ID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		registerTestUser(t, svc, "user@example.com")
		svc.GetErr = errors.New("connection refused")
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(http.MethodGet, "/api/users/1", 1))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("user deletes their own account", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		user := registerTestUser(t, svc, "user@example.com")
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(
			http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), user.ID))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 0, svc.Store.Len())

		var resp shared.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User deleted successfully", resp.Message)
	})

	t.Run("deleting another user's account is a 403", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		user := registerTestUser(t, svc, "user@example.com")
		other := registerTestUser(t, svc, "other@example.com")
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(
			http.MethodDelete, fmt.Sprintf("/api/users/%d", other.ID), user.ID))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, 2, svc.Store.Len())
	})

	t.Run("deleting an already-removed account succeeds", func(t *testing.T) {
		svc := mocks.NewMockUserService()
		user := registerTestUser(t, svc, "user@example.com")
		require.NoError(t, svc.DeleteUser(context.Background(), user.ID))
		router := newUserRouter(NewUserHandler(svc, nil))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, userRequest(
			http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), user.ID))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
