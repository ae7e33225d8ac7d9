package service

import (
	"context"
	"time"

	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// postService is the concrete implementation of PostService
type postService struct {
	postRepo repository.PostRepository
	log      zerolog.Logger
}

// newPostService creates a new PostService
func newPostService(postRepo repository.PostRepository, log zerolog.Logger) *postService {
	return &postService{
		postRepo: postRepo,
		log:      log.With().Str("service", "post").Logger(),
	}
}

// Create validates the request, assigns the id and creation time, and
// inserts the record. A rejected request never reaches the store.
func (s *postService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Content: req.Content,
		Author:  *req.Author,
		Created: time.Now().UTC(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Msg("Post created")
	return post, nil
}

// List returns every post
func (s *postService) List(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.GetAll(ctx)
}

// Get returns the post with the given id, or (nil, nil) when absent
func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Update applies the present fields of req to the post with the given id.
// Returns models.ErrPostNotFound when the id does not exist.
func (s *postService) Update(ctx context.Context, id string, req *models.UpdatePostRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Empty() {
		// Nothing to apply; still report unknown ids.
		post, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return models.ErrPostNotFound
		}
		return nil
	}

	if err := s.postRepo.UpdateByID(ctx, id, req); err != nil {
		return err
	}

	s.log.Info().Str("post_id", id).Msg("Post updated")
	return nil
}

// Delete removes the post with the given id. Idempotent: deleting an
// unknown id succeeds with no effect.
func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.postRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("post_id", id).Msg("Post deleted")
	return nil
}

// Count returns the total number of posts
func (s *postService) Count(ctx context.Context) (int, error) {
	return s.postRepo.Count(ctx)
}
