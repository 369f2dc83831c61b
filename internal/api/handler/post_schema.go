package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createPostRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type authorResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type postResponse struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    authorResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listPostsResponse struct {
	Data       []postResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// postsResponse is the unpaginated envelope used by the author-filtered and
// current-user listings.
type postsResponse struct {
	Data  []postResponse `json:"data"`
	Count int            `json:"count"`
}
