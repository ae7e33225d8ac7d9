package models

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Author is the structured author of a post. It is stored nested as a
// JSON document; the flattened "First Last" string only ever exists in
// responses and is derived at serialization time.
type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName joins the author parts into the wire representation.
func (a Author) DisplayName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.FirstName, validation.Required.Error("author.firstName is required")),
		validation.Field(&a.LastName, validation.Required.Error("author.lastName is required")),
	)
}

// Post is the canonical stored record. ID is assigned on creation and
// immutable afterwards.
type Post struct {
	ID      string    `json:"id" db:"id"`
	Title   string    `json:"title" db:"title"`
	Content string    `json:"content" db:"content"`
	Author  Author    `json:"author" db:"-"` // stored as JSONB in the author column
	Created time.Time `json:"created" db:"created"`
}

// CreatePostRequest is the body of POST /v1/posts. All fields are required.
type CreatePostRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Author  *Author `json:"author"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
	)
}

// UpdatePostRequest is the body of PUT /v1/posts/:id. Any subset of fields
// may be present; only present fields are applied.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *Author `json:"author"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title must not be empty")),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content must not be empty")),
		validation.Field(&r.Author),
	)
}

// Empty reports whether the update carries no fields at all.
func (r UpdatePostRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && r.Author == nil
}

// PostDTO is the response shape of a post. Note the asymmetry with the
// request: author is flattened to a single display string.
type PostDTO struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
}

// NewPostDTO projects a stored record onto the wire shape.
func NewPostDTO(p *Post) PostDTO {
	return PostDTO{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.DisplayName(),
		Created: p.Created,
	}
}
