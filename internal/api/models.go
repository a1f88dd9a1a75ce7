package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// The email bounds (5-50) and password minimum (6) match the public API
// contract enforced since the first release.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,min=5,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication
// endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID int64 `json:"user_id"`

	// Token is the signed JWT used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// BookRequest defines the payload for book create and update endpoints.
// Price is a pointer so that a missing price and an explicit zero are
// told apart: both are rejected, but with accurate field errors.
type BookRequest struct {
	Name   string   `json:"name"   validate:"required"`
	Author string   `json:"author" validate:"required"`
	Price  *float64 `json:"price"  validate:"required,gt=0"`
}
