package database

import (
	"context"

	"weblog/internal/config"
	"weblog/internal/core/like"
)

type LikeRepositoryDatabase struct{}

func NewLikeRepositoryDatabase() *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{}
}

func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) error {
	return config.DB.WithContext(ctx).Create(l).Error
}

// DeleteByUserAndPost removes every row for the pair in one statement.
func (repo *LikeRepositoryDatabase) DeleteByUserAndPost(ctx context.Context, userID, postID string) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&like.Like{}).Error
}

func (repo *LikeRepositoryDatabase) LikerIDs(ctx context.Context, postID string) ([]string, error) {
	var ids []string
	if err := config.DB.WithContext(ctx).
		Model(&like.Like{}).
		Where("post_id = ?", postID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
