package postapp

import (
	"context"
	"fmt"

	"weblog/internal/core/apperr"
	"weblog/internal/core/feedqueue"
	"weblog/internal/core/ownership"
	postEntity "weblog/internal/core/post"
	feedPort "weblog/internal/ports/feedqueue"
	likePort "weblog/internal/ports/like"
	postPort "weblog/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository  postPort.PostRepository
	LikeRepository  likePort.LikeRepository
	QueueRepository feedPort.QueueRepository
	FeedRedis       feedPort.FeedRedis
	Guard           *ownership.Guard
	Logger          *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	likeRepo likePort.LikeRepository,
	queueRepo feedPort.QueueRepository,
	feedRedis feedPort.FeedRedis,
	guard *ownership.Guard,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:  postRepo,
		LikeRepository:  likeRepo,
		QueueRepository: queueRepo,
		FeedRedis:       feedRedis,
		Guard:           guard,
		Logger:          logger,
	}
}

// ListPosts returns every post, newest first, with the author's
// username and the ids of the users who liked it.
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		likers, err := s.LikeRepository.LikerIDs(ctx, p.ID.String())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, toDTO(p, likers))
	}
	return dtos, nil
}

// CreatePost persists a new post and enqueues it for the recent-posts
// feed. An empty title is rejected before anything is written.
func (s *PostService) CreatePost(ctx context.Context, authorID, title, body string) (*postPort.PostDTO, error) {
	if title == "" {
		return nil, apperr.Validation("title is required")
	}

	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    title,
		Body:     body,
		AuthorID: aid,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	fq := &feedqueue.FeedQueue{
		ID:     uuid.Must(uuid.NewV4()),
		PostID: created.ID,
		Status: feedqueue.StatusPending,
	}
	if _, err := s.QueueRepository.Create(ctx, fq); err != nil {
		// the post itself is committed; the feed catches up later
		s.Logger.Warn("could not enqueue post for feed", zap.String("postID", created.ID.String()), zap.Error(err))
	}

	return toDTO(created, nil), nil
}

// GetPost is the public single-post read path: ownership is not
// enforced, anyone may view.
func (s *PostService) GetPost(ctx context.Context, id string) (*postPort.PostDTO, error) {
	p, err := s.Guard.ResolvePost(ctx, id, "", false)
	if err != nil {
		return nil, err
	}
	return toDTO(p, nil), nil
}

// UpdatePost overwrites title and body; author and creation time stay
// untouched. Only the author may update.
func (s *PostService) UpdatePost(ctx context.Context, id, actorID, title, body string) (*postPort.PostDTO, error) {
	p, err := s.Guard.ResolvePost(ctx, id, actorID, true)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, apperr.Validation("title is required")
	}

	p.Title = title
	p.Body = body
	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return toDTO(updated, nil), nil
}

// DeletePost removes the post row only. Comments and likes pointing at
// it are left in place; there is no cascade.
func (s *PostService) DeletePost(ctx context.Context, id, actorID string) error {
	if _, err := s.Guard.ResolvePost(ctx, id, actorID, true); err != nil {
		return err
	}
	if err := s.PostRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.FeedRedis.RemovePost(ctx, id); err != nil {
		s.Logger.Warn("could not remove post from feed", zap.String("postID", id), zap.Error(err))
	}
	return nil
}

func toDTO(p *postEntity.Post, likers []string) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Body:      p.Body,
		AuthorID:  p.AuthorID.String(),
		Author:    p.Author.Username,
		CreatedAt: p.CreatedAt.String(),
		LikerIDs:  likers,
	}
}
