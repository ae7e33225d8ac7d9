package repository

import (
	"context"

	"github.com/blog-posts-api/internal/database"
	"github.com/blog-posts-api/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetAll(ctx context.Context) ([]*models.Post, error)
	// GetByID returns (nil, nil) when no post matches the id.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// UpdateByID applies only the fields present in fields and returns
	// models.ErrPostNotFound when the id does not exist.
	UpdateByID(ctx context.Context, id string, fields *models.UpdatePostRequest) error
	// DeleteByID removes the post. Deleting an unknown id is a no-op.
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post PostRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Post: NewPostRepo(db),
	}
}
