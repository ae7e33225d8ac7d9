package api

import (
	"errors"
	"net/http"

	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/service"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
)

// isValidationError reports whether err came out of request validation
// rather than the store.
func isValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

// PostHandler handles the post resource endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// ListPosts handles GET /v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	posts, err := h.services.Post.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}

	dtos := make([]models.PostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, models.NewPostDTO(post))
	}

	c.JSON(http.StatusOK, dtos)
}

// CreatePost handles POST /v1/posts
// Accepts {title, content, author:{firstName,lastName}}; all fields required.
func (h *PostHandler) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Create(ctx, &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("Failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	h.log.Info().Str("post_id", post.ID).Str("title", post.Title).Msg("Post created")
	c.JSON(http.StatusCreated, models.NewPostDTO(post))
}

// UpdatePost handles PUT /v1/posts/:id
// The body may carry any subset of {title, content, author}; only the
// present fields are applied.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.services.Post.Update(ctx, id, &req)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("post_id", id).Msg("Failed to update post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePost handles DELETE /v1/posts/:id
// Deletion is idempotent by id: deleting an unknown id returns 204.
func (h *PostHandler) DeletePost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Post.Delete(ctx, id); err != nil {
		h.log.Error().Err(err).Str("post_id", id).Msg("Failed to delete post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
