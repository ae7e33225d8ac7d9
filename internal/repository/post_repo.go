package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/blog-posts-api/internal/database"
	"github.com/blog-posts-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new post. The author is stored as a JSONB document so
// the nested shape survives as the source of truth.
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	authorJSON, err := json.Marshal(post.Author)
	if err != nil {
		return fmt.Errorf("failed to encode author: %w", err)
	}

	query := `
		INSERT INTO posts (id, title, content, author, created)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, authorJSON, post.Created,
	)
	return err
}

// GetAll retrieves every post in insertion order
func (r *postRepo) GetAll(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, author, created
		FROM posts ORDER BY created, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetByID retrieves a post by ID, returning (nil, nil) when absent
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, title, content, author, created
		FROM posts WHERE id = $1
	`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateByID applies the present fields only. COALESCE keeps the stored
// value wherever the caller passed nothing.
func (r *postRepo) UpdateByID(ctx context.Context, id string, fields *models.UpdatePostRequest) error {
	var authorJSON []byte
	if fields.Author != nil {
		var err error
		authorJSON, err = json.Marshal(fields.Author)
		if err != nil {
			return fmt.Errorf("failed to encode author: %w", err)
		}
	}

	query := `
		UPDATE posts SET
			title   = COALESCE($2, title),
			content = COALESCE($3, content),
			author  = COALESCE($4::jsonb, author)
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		id, fields.Title, fields.Content, authorJSON,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPostNotFound
	}
	return nil
}

// DeleteByID removes a post. Deleting an id that does not exist succeeds
// with no effect, keeping the operation idempotent.
func (r *postRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

// scanPost reads one posts row, decoding the JSONB author column.
func scanPost(scan func(dest ...any) error) (*models.Post, error) {
	var post models.Post
	var authorJSON []byte

	if err := scan(&post.ID, &post.Title, &post.Content, &authorJSON, &post.Created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(authorJSON, &post.Author); err != nil {
		return nil, fmt.Errorf("failed to decode author: %w", err)
	}
	return &post, nil
}
