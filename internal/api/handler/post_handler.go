package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/api/metrics"
	"github.com/blogforge/blog-api/internal/api/middleware"
	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts — the public, paginated listing.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Param        page       query     int  false  "Page number (1-based)"
// @Param        page_size  query     int  false  "Page size (capped)"
// @Success      200        {object}  listPostsResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.service.List(c.Request().Context(), ports.ListPostsInput{Page: page, Limit: limit})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Create handles POST /posts. The author is always the authenticated caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  ValidationError
// @Failure      401   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), middleware.Identity(c), ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Get handles GET /posts/:id.
//
// @Summary      Retrieve a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Update handles PUT /posts/:id. Only the author may update; a missing post
// is reported as not found before ownership is considered.
//
// @Summary      Update a post by id
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Post id"
// @Param        body  body      updatePostRequest  true  "New post content"
// @Success      200   {object}  postResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), middleware.Identity(c), id, ports.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.WriteDeniedTotal.Inc()
		}
		return err
	}

	metrics.PostsUpdatedTotal.Inc()

	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete a post by id
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  int  true  "Post id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), middleware.Identity(c), id); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.WriteDeniedTotal.Inc()
		}
		return err
	}

	metrics.PostsDeletedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}

// Mine handles GET /posts/current_user — the caller's own posts.
//
// @Summary      List the current user's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  postsResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts/current_user [get]
func (h *PostHandler) Mine(c echo.Context) error {
	posts, err := h.service.ListOwn(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPostsResponse(posts))
}

// ByAuthor handles GET /posts/posts_for — posts filtered by the author's
// first name (exact, case-sensitive). Without a filter it returns all posts.
//
// @Summary      List posts for an author
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        first_name  query     string  false  "Author first name (exact match)"
// @Success      200         {object}  postsResponse
// @Failure      401         {object}  errorResponse
// @Router       /posts/posts_for [get]
func (h *PostHandler) ByAuthor(c echo.Context) error {
	posts, err := h.service.ListByAuthorFirstName(c.Request().Context(), middleware.Identity(c), c.QueryParam("first_name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPostsResponse(posts))
}

// postID parses the numeric path parameter. A non-numeric id cannot match
// any post, so it surfaces as not found.
func postID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "post not found")
	}
	return id, nil
}
