package mocks

import (
	"context"
	"time"

	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/service"
	"github.com/google/uuid"
)

// MockPostService is a mock implementation of PostService. It validates
// requests the same way the real service does and keeps posts in memory,
// so handler tests exercise the full request/response contract.
type MockPostService struct {
	Posts map[string]*models.Post
	order []string

	CreateFunc func(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error)
	ListError  error
	StoreError error
}

// Verify interface compliance
var _ service.PostService = (*MockPostService)(nil)

func NewMockPostService() *MockPostService {
	return &MockPostService{
		Posts: make(map[string]*models.Post),
	}
}

// Seed inserts a post directly, bypassing validation
func (m *MockPostService) Seed(post *models.Post) {
	if _, exists := m.Posts[post.ID]; !exists {
		m.order = append(m.order, post.ID)
	}
	m.Posts[post.ID] = post
}

func (m *MockPostService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if m.StoreError != nil {
		return nil, m.StoreError
	}
	post := &models.Post{
		ID:      uuid.New().String(),
		Title:   req.Title,
		Content: req.Content,
		Author:  *req.Author,
		Created: time.Now().UTC(),
	}
	m.Seed(post)
	return post, nil
}

func (m *MockPostService) List(ctx context.Context) ([]*models.Post, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	posts := make([]*models.Post, 0, len(m.order))
	for _, id := range m.order {
		if post, exists := m.Posts[id]; exists {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *MockPostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return m.Posts[id], nil
}

func (m *MockPostService) Update(ctx context.Context, id string, req *models.UpdatePostRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if m.StoreError != nil {
		return m.StoreError
	}
	post, exists := m.Posts[id]
	if !exists {
		return models.ErrPostNotFound
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	return nil
}

func (m *MockPostService) Delete(ctx context.Context, id string) error {
	if m.StoreError != nil {
		return m.StoreError
	}
	delete(m.Posts, id)
	return nil
}

func (m *MockPostService) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}
