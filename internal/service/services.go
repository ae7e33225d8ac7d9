package service

import (
	"context"

	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/repository"
	"github.com/rs/zerolog"
)

// PostService defines the interface for post operations
type PostService interface {
	Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, req *models.UpdatePostRequest) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Post PostService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Post: newPostService(repos.Post, log),
	}
}
