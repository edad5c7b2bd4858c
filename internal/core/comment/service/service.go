package commentapp

import (
	"context"
	"fmt"

	commentEntity "weblog/internal/core/comment"
	"weblog/internal/core/ownership"
	commentPort "weblog/internal/ports/comment"

	"github.com/gofrs/uuid"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	Guard             *ownership.Guard
}

func NewCommentService(repo commentPort.CommentRepository, guard *ownership.Guard) *CommentService {
	return &CommentService{
		CommentRepository: repo,
		Guard:             guard,
	}
}

// CommentsOfPost returns the post's comments in storage order, each
// with the commenter's username.
func (s *CommentService) CommentsOfPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, nil
}

// AddComment lets any authenticated user comment on an existing post.
// The body is not checked for emptiness.
func (s *CommentService) AddComment(ctx context.Context, actorID, postID, body string) (*commentPort.CommentDTO, error) {
	if _, err := s.Guard.ResolvePost(ctx, postID, actorID, false); err != nil {
		return nil, err
	}

	uid, err := uuid.FromString(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}

	c := &commentEntity.Comment{
		ID:     uuid.Must(uuid.NewV4()),
		PostID: pid,
		UserID: uid,
		Body:   body,
	}

	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return toDTO(created), nil
}

// UpdateComment overwrites the body; only the commenting user may do it.
func (s *CommentService) UpdateComment(ctx context.Context, id, actorID, body string) (*commentPort.CommentDTO, error) {
	c, err := s.Guard.ResolveComment(ctx, id, actorID, true)
	if err != nil {
		return nil, err
	}

	c.Body = body
	updated, err := s.CommentRepository.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	return toDTO(updated), nil
}

// DeleteComment removes the comment and returns the owning post's id so
// the caller can navigate back to the single-post view.
func (s *CommentService) DeleteComment(ctx context.Context, id, actorID string) (string, error) {
	c, err := s.Guard.ResolveComment(ctx, id, actorID, true)
	if err != nil {
		return "", err
	}
	if err := s.CommentRepository.Delete(ctx, id); err != nil {
		return "", err
	}
	return c.PostID.String(), nil
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	return &commentPort.CommentDTO{
		ID:       c.ID.String(),
		PostID:   c.PostID.String(),
		UserID:   c.UserID.String(),
		Username: c.User.Username,
		Body:     c.Body,
	}
}
