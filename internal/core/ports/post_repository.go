package ports

import (
	"context"

	"github.com/blogforge/blog-api/internal/core/domain"
)

// ListPostsFilter carries all query parameters for listing posts.
type ListPostsFilter struct {
	AuthorID        int64  // >0: only posts by this author
	AuthorFirstName string // non-empty: exact match on the author's first name
	Page            int    // 1-based; only meaningful when Limit > 0
	Limit           int    // <=0: no pagination, return all matching rows
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindByID returns the post with its author joined, or domain.ErrPostNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
	// List returns a page of posts in insertion (id) order and the total
	// count of rows matching the filter.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
}
