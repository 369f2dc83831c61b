package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
)

// User models a registered author. Email is the login identifier; there is
// no separate username field.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	PasswordHash string     `json:"-"`
	IsStaff      bool       `json:"is_staff"`
	IsSuperuser  bool       `json:"is_superuser"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Identity is the authenticated actor attached to a request after token
// verification. A nil *Identity means the caller is anonymous.
type Identity struct {
	UserID    int64
	Email     string
	FirstName string
}

// Identity returns the request identity derived from the user record.
func (u *User) Identity() *Identity {
	return &Identity{UserID: u.ID, Email: u.Email, FirstName: u.FirstName}
}
