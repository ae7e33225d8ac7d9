package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/blog-posts-api/internal/mocks"
	"github.com/blog-posts-api/internal/models"
)

func newPost(n int) *models.Post {
	return &models.Post{
		ID:      fmt.Sprintf("post-%d", n),
		Title:   fmt.Sprintf("Title %d", n),
		Content: fmt.Sprintf("Content %d", n),
		Author:  models.Author{FirstName: "First", LastName: fmt.Sprintf("Last%d", n)},
		Created: time.Now().UTC(),
	}
}

func TestMockPostRepository_CountTracksCreatesAndDeletes(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	// Initially empty
	count, _ := repo.Count(ctx)
	if count != 0 {
		t.Errorf("Expected 0, got %d", count)
	}

	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, newPost(i)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	count, _ = repo.Count(ctx)
	if count != 5 {
		t.Errorf("Expected 5, got %d", count)
	}

	repo.DeleteByID(ctx, "post-0")
	repo.DeleteByID(ctx, "post-1")

	count, _ = repo.Count(ctx)
	if count != 3 {
		t.Errorf("Expected 3 after two deletes, got %d", count)
	}
}

func TestMockPostRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		repo.Create(ctx, newPost(i))
	}

	posts, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(posts) != 4 {
		t.Fatalf("Expected 4 posts, got %d", len(posts))
	}
	for i, post := range posts {
		expected := fmt.Sprintf("post-%d", i)
		if post.ID != expected {
			t.Errorf("Expected %s at index %d, got %s", expected, i, post.ID)
		}
	}
}

func TestMockPostRepository_GetByID_Absent(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	post, err := repo.GetByID(ctx, "missing")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if post != nil {
		t.Error("Expected nil for absent id")
	}
}

func TestMockPostRepository_UpdateByID_PartialFields(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	repo.Create(ctx, newPost(1))

	title := "updated"
	err := repo.UpdateByID(ctx, "post-1", &models.UpdatePostRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}

	post, _ := repo.GetByID(ctx, "post-1")
	if post.Title != "updated" {
		t.Errorf("Expected title 'updated', got '%s'", post.Title)
	}
	if post.Content != "Content 1" {
		t.Errorf("Content should be unchanged, got '%s'", post.Content)
	}
	if post.Author.LastName != "Last1" {
		t.Errorf("Author should be unchanged, got %+v", post.Author)
	}
}

func TestMockPostRepository_UpdateByID_NotFound(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	title := "updated"
	err := repo.UpdateByID(ctx, "missing", &models.UpdatePostRequest{Title: &title})
	if err != models.ErrPostNotFound {
		t.Errorf("Expected ErrPostNotFound, got %v", err)
	}
}

func TestMockPostRepository_DeleteByID_Idempotent(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	repo.Create(ctx, newPost(1))

	if err := repo.DeleteByID(ctx, "post-1"); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}
	// Second delete of the same id is a no-op success
	if err := repo.DeleteByID(ctx, "post-1"); err != nil {
		t.Errorf("Second delete should succeed, got %v", err)
	}

	post, _ := repo.GetByID(ctx, "post-1")
	if post != nil {
		t.Error("Post should be gone")
	}
}

func TestMockPostRepository_CreateStoresAuthorNested(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.Post{
		ID:      "post-a",
		Title:   "t",
		Content: "c",
		Author:  models.Author{FirstName: "A", LastName: "B"},
		Created: time.Now().UTC(),
	})

	post, _ := repo.GetByID(ctx, "post-a")
	if post.Author.FirstName != "A" || post.Author.LastName != "B" {
		t.Errorf("Expected nested author {A B}, got %+v", post.Author)
	}
	if post.Author.DisplayName() != "A B" {
		t.Errorf("Expected display name 'A B', got '%s'", post.Author.DisplayName())
	}
}
