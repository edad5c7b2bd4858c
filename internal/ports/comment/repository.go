package comment

import (
	"context"
	"weblog/internal/core/comment"
)

// CommentRepository is the outbound port for storing and loading
// comments. FindByPostID loads the commenter relation and keeps storage
// order; a missing id yields apperr.NotFound.
type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	FindByID(ctx context.Context, id string) (*comment.Comment, error)
	FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)
	Update(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	Delete(ctx context.Context, id string) error
}

type CommentDTO struct {
	ID       string `json:"id"`
	PostID   string `json:"post_id"`
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Body     string `json:"body"`
}
