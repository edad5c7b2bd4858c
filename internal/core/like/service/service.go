package likeapp

import (
	"context"
	"fmt"

	likeEntity "weblog/internal/core/like"
	"weblog/internal/core/ownership"
	likePort "weblog/internal/ports/like"

	"github.com/gofrs/uuid"
)

type LikeService struct {
	LikeRepository likePort.LikeRepository
	Guard          *ownership.Guard
}

func NewLikeService(repo likePort.LikeRepository, guard *ownership.Guard) *LikeService {
	return &LikeService{
		LikeRepository: repo,
		Guard:          guard,
	}
}

// Like records a like on an existing post. The insert is unconditional;
// repeated calls leave duplicate rows behind.
func (s *LikeService) Like(ctx context.Context, actorID, postID string) error {
	if _, err := s.Guard.ResolvePost(ctx, postID, actorID, false); err != nil {
		return err
	}

	uid, err := uuid.FromString(actorID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	pid, err := uuid.FromString(postID)
	if err != nil {
		return fmt.Errorf("invalid post id: %w", err)
	}

	return s.LikeRepository.Create(ctx, &likeEntity.Like{UserID: uid, PostID: pid})
}

// Unlike removes every like row for the (actor, post) pair at once, so
// duplicates accumulated by repeated likes all go in one call.
func (s *LikeService) Unlike(ctx context.Context, actorID, postID string) error {
	if _, err := s.Guard.ResolvePost(ctx, postID, actorID, false); err != nil {
		return err
	}
	return s.LikeRepository.DeleteByUserAndPost(ctx, actorID, postID)
}

// LikerIDs returns the ids of the users who liked the post. Ids, not
// usernames: that is what the original navigation consumes.
func (s *LikeService) LikerIDs(ctx context.Context, postID string) ([]string, error) {
	if _, err := s.Guard.ResolvePost(ctx, postID, "", false); err != nil {
		return nil, err
	}
	return s.LikeRepository.LikerIDs(ctx, postID)
}
