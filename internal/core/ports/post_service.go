package ports

import (
	"context"

	"github.com/blogforge/blog-api/internal/core/domain"
)

// CreatePostInput carries the client-settable fields of a new post. The
// author is never client-settable; it is forced to the acting identity.
type CreatePostInput struct {
	Title   string
	Content string
}

// UpdatePostInput carries the mutable fields of an existing post.
type UpdatePostInput struct {
	Title   string
	Content string
}

// ListPostsInput carries pagination parameters for the public listing.
type ListPostsInput struct {
	Page  int // 1-based; defaults to 1
	Limit int // <=0: use the configured default page size
}

// PostPage is one page of the public post listing.
type PostPage struct {
	Items      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PostService defines use-case operations for posts. Every operation takes
// the acting identity explicitly; nil means anonymous.
type PostService interface {
	List(ctx context.Context, input ListPostsInput) (*PostPage, error)
	Create(ctx context.Context, actor *domain.Identity, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	// Update and Delete resolve the post first (domain.ErrPostNotFound) and
	// only then evaluate ownership (domain.ErrForbidden).
	Update(ctx context.Context, actor *domain.Identity, id int64, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.Identity, id int64) error
	// ListByAuthorFirstName returns posts whose author's first name matches
	// exactly; an empty filter returns all posts. Requires authentication.
	ListByAuthorFirstName(ctx context.Context, actor *domain.Identity, firstName string) ([]*domain.Post, error)
	// ListOwn returns the acting identity's own posts.
	ListOwn(ctx context.Context, actor *domain.Identity) ([]*domain.Post, error)
}
