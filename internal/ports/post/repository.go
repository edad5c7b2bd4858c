package post

import (
	"context"
	"weblog/internal/core/post"
)

// PostRepository is the outbound port for storing and loading posts.
// FindByID and ListAll load the author relation; a missing id yields
// apperr.NotFound.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	ListAll(ctx context.Context) ([]*post.Post, error) // newest first
	Update(ctx context.Context, post *post.Post) (*post.Post, error)
	Delete(ctx context.Context, id string) error
}

type PostDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	AuthorID  string   `json:"author_id"`
	Author    string   `json:"author,omitempty"`
	CreatedAt string   `json:"created_at"`
	LikerIDs  []string `json:"liker_ids,omitempty"` // user ids, not usernames
}
