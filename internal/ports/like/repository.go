package like

import (
	"context"
	"weblog/internal/core/like"
)

// LikeRepository is the outbound port for the like relation.
// DeleteByUserAndPost removes every row matching the pair, so duplicate
// likes disappear in one call.
type LikeRepository interface {
	Create(ctx context.Context, like *like.Like) error
	DeleteByUserAndPost(ctx context.Context, userID, postID string) error
	LikerIDs(ctx context.Context, postID string) ([]string, error)
}
