package ownership

import (
	"context"
	"weblog/internal/core/apperr"
	commentEntity "weblog/internal/core/comment"
	postEntity "weblog/internal/core/post"
	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
)

// Guard resolves an entity by id and makes the not-found-vs-forbidden
// decision in one place, so every mutating operation gets the same
// semantics. Read paths pass enforceOwner=false.
type Guard struct {
	PostRepository    postPort.PostRepository
	CommentRepository commentPort.CommentRepository
}

func NewGuard(posts postPort.PostRepository, comments commentPort.CommentRepository) *Guard {
	return &Guard{
		PostRepository:    posts,
		CommentRepository: comments,
	}
}

// ResolvePost loads the post. A missing id surfaces as apperr.NotFound
// from the repository; with enforceOwner set, an actor other than the
// author gets apperr.ErrForbidden.
func (g *Guard) ResolvePost(ctx context.Context, id, actorID string, enforceOwner bool) (*postEntity.Post, error) {
	p, err := g.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enforceOwner && p.AuthorID.String() != actorID {
		return nil, apperr.ErrForbidden
	}
	return p, nil
}

// ResolveComment is ResolvePost for comments; ownership is checked
// against the commenting user.
func (g *Guard) ResolveComment(ctx context.Context, id, actorID string, enforceOwner bool) (*commentEntity.Comment, error) {
	c, err := g.CommentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enforceOwner && c.UserID.String() != actorID {
		return nil, apperr.ErrForbidden
	}
	return c, nil
}
