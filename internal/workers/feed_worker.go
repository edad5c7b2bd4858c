package workers

import (
	"context"
	"time"

	"weblog/internal/core/apperr"
	"weblog/internal/core/feedqueue"
	feedPort "weblog/internal/ports/feedqueue"
	postPort "weblog/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// FeedWorker drains pending feed_queue rows into the Redis recent-posts
// set, scored by the post's creation time.
type FeedWorker struct {
	QueueRepo feedPort.QueueRepository
	FeedRedis feedPort.FeedRedis
	PostRepo  postPort.PostRepository
	BatchSize int
	Interval  time.Duration
	Logger    *zap.Logger
}

func NewFeedWorker(
	queueRepo feedPort.QueueRepository,
	feedRedis feedPort.FeedRedis,
	postRepo postPort.PostRepository,
	batchSize int,
	interval time.Duration,
	logger *zap.Logger,
) *FeedWorker {
	return &FeedWorker{
		QueueRepo: queueRepo,
		FeedRedis: feedRedis,
		PostRepo:  postRepo,
		BatchSize: batchSize,
		Interval:  interval,
		Logger:    logger,
	}
}

// Run polls the queue until the context is cancelled.
func (w *FeedWorker) Run(ctx context.Context) {
	w.Logger.Info("feed worker started")
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("feed worker stopped")
			return
		default:
			pending, err := w.QueueRepo.GetPending(ctx, int64(w.BatchSize))
			if err != nil {
				w.Logger.Error("error fetching pending feed rows", zap.Error(err))
				time.Sleep(w.Interval)
				continue
			}

			for _, row := range pending {
				w.process(ctx, row)
			}

			time.Sleep(w.Interval)
		}
	}
}

func (w *FeedWorker) process(ctx context.Context, row *feedqueue.FeedQueue) {
	if row == nil || row.PostID == uuid.Nil {
		w.Logger.Error("invalid feed queue row", zap.Any("row", row))
		return
	}

	p, err := w.PostRepo.FindByID(ctx, row.PostID.String())
	if err != nil {
		if apperr.IsNotFound(err) {
			// post deleted before the feed caught up; retire the row
			w.markDone(ctx, row)
			return
		}
		w.Logger.Error("error loading post for feed", zap.String("postID", row.PostID.String()), zap.Error(err))
		return
	}

	if err := w.FeedRedis.PushPost(ctx, p.ID.String(), float64(p.CreatedAt.Unix())); err != nil {
		w.Logger.Error("error pushing post to feed", zap.String("postID", p.ID.String()), zap.Error(err))
		return
	}

	w.markDone(ctx, row)
}

func (w *FeedWorker) markDone(ctx context.Context, row *feedqueue.FeedQueue) {
	if err := w.QueueRepo.MarkDone(ctx, row.ID); err != nil {
		w.Logger.Warn("could not mark feed row done", zap.String("id", row.ID.String()), zap.Error(err))
	}
}
