package feedqueue

import (
	"context"
	"weblog/internal/core/feedqueue"

	"github.com/gofrs/uuid"
)

type QueueRepository interface {
	Create(ctx context.Context, row *feedqueue.FeedQueue) (*feedqueue.FeedQueue, error)
	GetPending(ctx context.Context, limit int64) ([]*feedqueue.FeedQueue, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
}

// FeedRedis maintains the recent-posts sorted set.
type FeedRedis interface {
	PushPost(ctx context.Context, postID string, score float64) error
	RemovePost(ctx context.Context, postID string) error
	RecentPostIDs(ctx context.Context, limit int64) ([]string, error)
}
