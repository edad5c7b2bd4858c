package database

import (
	"context"
	"time"

	"weblog/internal/config"
	"weblog/internal/core/feedqueue"

	"github.com/gofrs/uuid"
)

type FeedQueueRepositoryDatabase struct{}

func NewFeedQueueRepositoryDatabase() *FeedQueueRepositoryDatabase {
	return &FeedQueueRepositoryDatabase{}
}

func (repo *FeedQueueRepositoryDatabase) Create(ctx context.Context, row *feedqueue.FeedQueue) (*feedqueue.FeedQueue, error) {
	if err := config.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (repo *FeedQueueRepositoryDatabase) GetPending(ctx context.Context, limit int64) ([]*feedqueue.FeedQueue, error) {
	var rows []*feedqueue.FeedQueue
	if err := config.DB.WithContext(ctx).
		Where("status = ?", feedqueue.StatusPending).
		Limit(int(limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *FeedQueueRepositoryDatabase) MarkDone(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return config.DB.WithContext(ctx).
		Model(&feedqueue.FeedQueue{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       feedqueue.StatusDone,
			"processed_at": &now,
		}).Error
}
