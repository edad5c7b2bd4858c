package redis

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const (
	feedKey    = "feed:recent"
	feedWindow = 100 // members kept in the sorted set
)

// FeedRepositoryRedis keeps the most recent posts in one sorted set,
// scored by creation time.
type FeedRepositoryRedis struct {
	Client *redis.Client
}

func NewFeedRepositoryRedis(client *redis.Client) *FeedRepositoryRedis {
	return &FeedRepositoryRedis{Client: client}
}

func (r *FeedRepositoryRedis) PushPost(ctx context.Context, postID string, score float64) error {
	z := &redis.Z{
		Score:  score,
		Member: postID,
	}
	if err := r.Client.ZAdd(ctx, feedKey, z).Err(); err != nil {
		return err
	}
	// trim everything below the window
	return r.Client.ZRemRangeByRank(ctx, feedKey, 0, int64(-(feedWindow + 1))).Err()
}

func (r *FeedRepositoryRedis) RemovePost(ctx context.Context, postID string) error {
	return r.Client.ZRem(ctx, feedKey, postID).Err()
}

func (r *FeedRepositoryRedis) RecentPostIDs(ctx context.Context, limit int64) ([]string, error) {
	return r.Client.ZRevRange(ctx, feedKey, 0, limit-1).Result()
}
