package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCreatePostRequest_Validate(t *testing.T) {
	author := &Author{FirstName: "F", LastName: "L"}

	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr bool
	}{
		{"valid", CreatePostRequest{Title: "t", Content: "c", Author: author}, false},
		{"missing title", CreatePostRequest{Content: "c", Author: author}, true},
		{"missing content", CreatePostRequest{Title: "t", Author: author}, true},
		{"missing author", CreatePostRequest{Title: "t", Content: "c"}, true},
		{"author missing first name", CreatePostRequest{Title: "t", Content: "c", Author: &Author{LastName: "L"}}, true},
		{"author missing last name", CreatePostRequest{Title: "t", Content: "c", Author: &Author{FirstName: "F"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestUpdatePostRequest_Validate(t *testing.T) {
	title := "t"
	empty := ""

	tests := []struct {
		name    string
		req     UpdatePostRequest
		wantErr bool
	}{
		{"no fields", UpdatePostRequest{}, false},
		{"title only", UpdatePostRequest{Title: &title}, false},
		{"empty title", UpdatePostRequest{Title: &empty}, true},
		{"valid author", UpdatePostRequest{Author: &Author{FirstName: "F", LastName: "L"}}, false},
		{"author missing parts", UpdatePostRequest{Author: &Author{FirstName: "F"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestUpdatePostRequest_Empty(t *testing.T) {
	title := "t"
	if !(UpdatePostRequest{}).Empty() {
		t.Error("Request with no fields should be empty")
	}
	if (UpdatePostRequest{Title: &title}).Empty() {
		t.Error("Request with a field should not be empty")
	}
}

func TestNewPostDTO_FlattensAuthor(t *testing.T) {
	post := &Post{
		ID:      "post-1",
		Title:   "t",
		Content: "c",
		Author:  Author{FirstName: "A", LastName: "B"},
		Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	dto := NewPostDTO(post)
	if dto.Author != "A B" {
		t.Errorf("Expected author 'A B', got '%s'", dto.Author)
	}

	// The wire shape carries the flattened string, never the object
	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]interface{}
	json.Unmarshal(raw, &decoded)
	if _, ok := decoded["author"].(string); !ok {
		t.Errorf("Expected author to serialize as a string, got %T", decoded["author"])
	}
}
