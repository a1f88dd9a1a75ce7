package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanachai/bookstore-api/internal/mocks"
)

// testTokenExpiry is the expiry the mock JWT service reports; success
// responses must echo it rather than recompute their own.
var testTokenExpiry = time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

// authTestFixture bundles the handler with the mocks backing it.
type authTestFixture struct {
	handler     *AuthHandler
	userService *mocks.MockUserService
	verifier    *mocks.MockPasswordVerifier
}

func newAuthTestFixture(verifierSucceeds bool) *authTestFixture {
	userService := mocks.NewMockUserService()
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: verifierSucceeds}

	handler := NewAuthHandler(
		userService,
		userService.Store,
		&mocks.MockJWTService{Token: "test-token", ExpiresAt: testTokenExpiry},
		verifier,
	)

	return &authTestFixture{
		handler:     handler,
		userService: userService,
		verifier:    verifier,
	}
}

func postJSON(t *testing.T, handlerFn http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	handlerFn(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	t.Run("successful registration returns 201 with token", func(t *testing.T) {
		fix := newAuthTestFixture(true)

		rr := postJSON(t, fix.handler.Register, "/api/register",
			`{"email":"new@example.com","password":"password123"}`)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.UserID)
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, testTokenExpiry.Format(time.RFC3339), resp.ExpiresAt,
			"expires_at must be the expiry the token service issued")

		assert.Equal(t, 1, fix.userService.Store.Len())
	})

	t.Run("plaintext password never reaches storage", func(t *testing.T) {
		fix := newAuthTestFixture(true)

		rr := postJSON(t, fix.handler.Register, "/api/register",
			`{"email":"new@example.com","password":"password123"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		user, err := fix.userService.Store.GetByEmail(context.Background(), "new@example.com")
		require.NoError(t, err)
		assert.Empty(t, user.Password)
		assert.NotEqual(t, "password123", user.HashedPassword)
	})

	t.Run("validation failures are 400", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"malformed JSON", `{"email":`},
			{"missing email", `{"password":"password123"}`},
			{"invalid email", `{"email":"not-an-email","password":"password123"}`},
			{"email too short", `{"email":"a@b","password":"password123"}`},
			{"missing password", `{"email":"new@example.com"}`},
			{"password too short", `{"email":"new@example.com","password":"short"}`},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				fix := newAuthTestFixture(true)
				rr := postJSON(t, fix.handler.Register, "/api/register", tc.body)

				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, 0, fix.userService.Store.Len())
			})
		}
	})

	t.Run("duplicate email is a 409 and leaves the store unchanged", func(t *testing.T) {
		fix := newAuthTestFixture(true)

		rr := postJSON(t, fix.handler.Register, "/api/register",
			`{"email":"taken@example.com","password":"password123"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		require.Equal(t, 1, fix.userService.Store.Len())

		rr = postJSON(t, fix.handler.Register, "/api/register",
			`{"email":"taken@example.com","password":"different456"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, 1, fix.userService.Store.Len())

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Email already registered", resp.Error)
	})

	t.Run("store failure is a 500, not a validation error", func(t *testing.T) {
		fix := newAuthTestFixture(true)
		fix.userService.RegisterErr = errors.New("connection refused")

		rr := postJSON(t, fix.handler.Register, "/api/register",
			`{"email":"new@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestLogin(t *testing.T) {
	registerUser := func(t *testing.T, fix *authTestFixture, email string) {
		t.Helper()
		rr := postJSON(t, fix.handler.Register, "/api/register",
			`{"email":"`+email+`","password":"password123"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	t.Run("successful login returns 200 with token", func(t *testing.T) {
		fix := newAuthTestFixture(true)
		registerUser(t, fix, "user@example.com")

		rr := postJSON(t, fix.handler.Login, "/api/login",
			`{"email":"user@example.com","password":"password123"}`)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.UserID)
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, testTokenExpiry.Format(time.RFC3339), resp.ExpiresAt)
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		fix := newAuthTestFixture(false)
		registerUser(t, fix, "user@example.com")

		rr := postJSON(t, fix.handler.Login, "/api/login",
			`{"email":"user@example.com","password":"wrongpassword"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		fix := newAuthTestFixture(false)
		registerUser(t, fix, "known@example.com")

		unknownEmail := postJSON(t, fix.handler.Login, "/api/login",
			`{"email":"unknown@example.com","password":"password123"}`)
		wrongPassword := postJSON(t, fix.handler.Login, "/api/login",
			`{"email":"known@example.com","password":"wrongpassword"}`)

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String(),
			"the two failure modes must produce identical responses")
	})

	t.Run("unknown email still burns a hash comparison", func(t *testing.T) {
		fix := newAuthTestFixture(false)

		rr := postJSON(t, fix.handler.Login, "/api/login",
			`{"email":"unknown@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, 1, fix.verifier.Calls,
			"a comparison against the dummy hash equalizes response timing")
	})

	t.Run("validation failures are 400", func(t *testing.T) {
		fix := newAuthTestFixture(true)

		tests := []struct {
			name string
			body string
		}{
			{"malformed JSON", `{"email":`},
			{"missing email", `{"password":"password123"}`},
			{"invalid email", `{"email":"not-an-email","password":"password123"}`},
			{"missing password", `{"email":"user@example.com"}`},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				rr := postJSON(t, fix.handler.Login, "/api/login", tc.body)
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			})
		}
	})

	t.Run("store failure is a 500, not a 401", func(t *testing.T) {
		fix := newAuthTestFixture(true)
		fix.userService.Store.GetErr = errors.New("connection refused")

		rr := postJSON(t, fix.handler.Login, "/api/login",
			`{"email":"user@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}
