package mocks

import (
	"errors"

	"github.com/tanachai/bookstore-api/internal/service/auth"
)

// MockPasswordVerifier is a configurable test double for
// auth.PasswordVerifier.
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare reports a match.
	ShouldSucceed bool

	// Calls counts how many comparisons were made, letting tests assert
	// that the login path always burns a comparison.
	Calls int
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier.
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.Compare.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.Calls++
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
