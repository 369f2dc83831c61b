package ports

import (
	"context"
	"time"

	"github.com/blogforge/blog-api/internal/core/domain"
)

// SignUpInput carries the fields accepted at registration.
type SignUpInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
}

// AuthService implements registration and credential verification.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	// Login verifies email and password and returns a token pair. Unknown
	// email and wrong password are indistinguishable: both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
}
