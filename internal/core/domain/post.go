package domain

import (
	"errors"
	"time"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("access forbidden")
)

// Post is a published article with exactly one author.
// Author is populated by queries that join the users table.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
