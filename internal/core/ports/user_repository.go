package ports

import (
	"context"

	"github.com/blogforge/blog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	// Create inserts a new user and returns it with generated fields set.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
