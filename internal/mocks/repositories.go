package mocks

import (
	"context"

	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/repository"
)

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	Posts map[string]*models.Post
	// order preserves insertion order for GetAll
	order []string

	CreateError error
	UpdateError error
	DeleteError error
	GetError    error
}

// Verify interface compliance
var _ repository.PostRepository = (*MockPostRepository)(nil)

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts: make(map[string]*models.Post),
	}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.Posts[post.ID]; !exists {
		m.order = append(m.order, post.ID)
	}
	stored := *post
	m.Posts[post.ID] = &stored
	return nil
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]*models.Post, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	posts := make([]*models.Post, 0, len(m.order))
	for _, id := range m.order {
		if post, exists := m.Posts[id]; exists {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Posts[id], nil
}

func (m *MockPostRepository) UpdateByID(ctx context.Context, id string, fields *models.UpdatePostRequest) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	post, exists := m.Posts[id]
	if !exists {
		return models.ErrPostNotFound
	}
	if fields.Title != nil {
		post.Title = *fields.Title
	}
	if fields.Content != nil {
		post.Content = *fields.Content
	}
	if fields.Author != nil {
		post.Author = *fields.Author
	}
	return nil
}

func (m *MockPostRepository) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Posts, id)
	return nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}
