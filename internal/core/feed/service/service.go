package feedapp

import (
	"context"

	"weblog/internal/core/apperr"
	feedPort "weblog/internal/ports/feedqueue"
	postPort "weblog/internal/ports/post"
)

// FeedService reads the recent-posts set maintained by the feed worker
// and hydrates each id from the store. The store stays authoritative:
// ids whose post has been deleted since are skipped.
type FeedService struct {
	FeedRedis      feedPort.FeedRedis
	PostRepository postPort.PostRepository
}

func NewFeedService(feedRedis feedPort.FeedRedis, postRepo postPort.PostRepository) *FeedService {
	return &FeedService{
		FeedRedis:      feedRedis,
		PostRepository: postRepo,
	}
}

func (s *FeedService) RecentPosts(ctx context.Context, limit int64) ([]*postPort.PostDTO, error) {
	ids, err := s.FeedRedis.RecentPostIDs(ctx, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]*postPort.PostDTO, 0, len(ids))
	for _, id := range ids {
		p, err := s.PostRepository.FindByID(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue // deleted since it was pushed
			}
			return nil, err
		}
		posts = append(posts, &postPort.PostDTO{
			ID:        p.ID.String(),
			Title:     p.Title,
			Body:      p.Body,
			AuthorID:  p.AuthorID.String(),
			Author:    p.Author.Username,
			CreatedAt: p.CreatedAt.String(),
		})
	}
	return posts, nil
}
