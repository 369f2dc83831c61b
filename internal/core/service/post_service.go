package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

const (
	defaultPageSize = 3
	maxPageSize     = 100
)

// PostService implements the post use cases on top of the repository and the
// ownership policy.
type PostService struct {
	repo     ports.PostRepository
	pageSize int
	log      zerolog.Logger
}

// NewPostService creates a PostService. pageSize is the default page size of
// the public listing; values <= 0 fall back to defaultPageSize.
func NewPostService(repo ports.PostRepository, pageSize int, log zerolog.Logger) *PostService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &PostService{repo: repo, pageSize: pageSize, log: log}
}

func (s *PostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.PostPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = s.pageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListPostsFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.PostPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Create persists a new post authored by actor. The author is forced to the
// acting identity regardless of anything the client sent.
func (s *PostService) Create(ctx context.Context, actor *domain.Identity, input ports.CreatePostInput) (*domain.Post, error) {
	if !domain.Can(actor, nil, domain.ActionWrite) {
		return nil, domain.ErrUnauthenticated
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("post_id", created.ID).Int64("author_id", actor.UserID).Msg("post created")
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update resolves the post first, then checks ownership: an absent post is
// reported as not found even to callers who would not own it.
func (s *PostService) Update(ctx context.Context, actor *domain.Identity, id int64, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.Can(actor, post, domain.ActionWrite) {
		return nil, domain.ErrForbidden
	}

	post.Title = input.Title
	post.Content = input.Content
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("post_id", id).Int64("author_id", post.AuthorID).Msg("post updated")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, actor *domain.Identity, id int64) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.Can(actor, post, domain.ActionWrite) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("post_id", id).Int64("author_id", post.AuthorID).Msg("post deleted")
	return nil
}

func (s *PostService) ListByAuthorFirstName(ctx context.Context, actor *domain.Identity, firstName string) ([]*domain.Post, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	items, _, err := s.repo.List(ctx, ports.ListPostsFilter{AuthorFirstName: firstName})
	return items, err
}

func (s *PostService) ListOwn(ctx context.Context, actor *domain.Identity) ([]*domain.Post, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	items, _, err := s.repo.List(ctx, ports.ListPostsFilter{AuthorID: actor.UserID})
	return items, err
}
