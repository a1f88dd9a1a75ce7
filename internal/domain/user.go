package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors.
var (
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmailTooShort       = errors.New("email must be at least 5 characters long")
	ErrEmailTooLong        = errors.New("email must be at most 50 characters long")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length bounds. The upper bound is bcrypt's practical limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72

	MinEmailLength = 5
	MaxEmailLength = 50
)

// User represents a registered user of the bookstore service.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used transiently during registration
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and password and sets
// the timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The store is responsible for hashing it before persistence.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Email:     email,
		Password:  password, // Plaintext - must be hashed before storage
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if len(u.Email) < MinEmailLength {
		return ErrEmailTooShort
	}

	if len(u.Email) > MaxEmailLength {
		return ErrEmailTooLong
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		// When a plaintext password is provided, validate its length.
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else {
		// Without a plaintext password the user must already carry a
		// hash (the case for users loaded from the database).
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// validateEmailFormat performs a structural check of the email format:
// exactly one local part, an @, and a domain containing an interior dot.
// The API layer performs the stricter RFC-style validation; this is a
// guard for users constructed outside the HTTP path.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domain := email[atIndex+1:]
	if strings.ContainsRune(domain, '@') {
		return false
	}

	dotIndex := strings.IndexByte(domain, '.')
	return dotIndex > 0 && dotIndex < len(domain)-1
}
