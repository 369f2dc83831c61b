package handler

import (
	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

func toPostResponse(p *domain.Post) postResponse {
	resp := postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
	if p.Author != nil {
		resp.Author = authorResponse{
			ID:        p.Author.ID,
			Email:     p.Author.Email,
			FirstName: p.Author.FirstName,
			LastName:  p.Author.LastName,
		}
	} else {
		resp.Author = authorResponse{ID: p.AuthorID}
	}
	return resp
}

func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, len(posts))
	for i, p := range posts {
		out[i] = toPostResponse(p)
	}
	return out
}

func toListResponse(page *ports.PostPage) listPostsResponse {
	return listPostsResponse{
		Data: toPostResponses(page.Items),
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	}
}

func toPostsResponse(posts []*domain.Post) postsResponse {
	return postsResponse{
		Data:  toPostResponses(posts),
		Count: len(posts),
	}
}
