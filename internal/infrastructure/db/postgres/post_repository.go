package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

const postSelect = `
	SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
	       u.id, u.email, u.first_name, u.last_name
	  FROM posts p
	  JOIN users u ON u.id = p.author_id`

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	query := `INSERT INTO posts (title, content, author_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	// Fetch back with the author joined.
	return r.FindByID(ctx, post.ID)
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	query := `UPDATE posts SET title = $1, content = $2, updated_at = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, post.Title, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrPostNotFound
	}

	return r.FindByID(ctx, post.ID)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// List returns posts in insertion (id) order. Pagination applies only when
// filter.Limit is positive; the total always reflects the unpaginated match.
func (r *PostRepository) List(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	where := ""
	args := []any{}

	switch {
	case filter.AuthorID > 0:
		where = ` WHERE p.author_id = $1`
		args = append(args, filter.AuthorID)
	case filter.AuthorFirstName != "":
		where = ` WHERE u.first_name = $1`
		args = append(args, filter.AuthorFirstName)
	}

	countQuery := `SELECT COUNT(*) FROM posts p JOIN users u ON u.id = p.author_id` + where
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := postSelect + where + ` ORDER BY p.id`
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	return posts, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		post   domain.Post
		author domain.User
	)
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Email, &author.FirstName, &author.LastName,
	)
	if err != nil {
		return nil, err
	}
	post.Author = &author
	return &post, nil
}
