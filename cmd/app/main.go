package main

import (
	"context"
	"os"
	"strconv"
	"time"

	dbadapter "weblog/internal/adapters/database"
	"weblog/internal/adapters/httpapi"
	redisadapter "weblog/internal/adapters/redis"
	"weblog/internal/config"
	"weblog/internal/core/comment"
	commentapp "weblog/internal/core/comment/service"
	feedapp "weblog/internal/core/feed/service"
	"weblog/internal/core/feedqueue"
	"weblog/internal/core/like"
	likeapp "weblog/internal/core/like/service"
	"weblog/internal/core/ownership"
	"weblog/internal/core/post"
	postapp "weblog/internal/core/post/service"
	"weblog/internal/core/user"
	userapp "weblog/internal/core/user/service"
	"weblog/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&comment.Comment{},
		&like.Like{},
		&feedqueue.FeedQueue{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	likeRepo := dbadapter.NewLikeRepositoryDatabase()
	queueRepo := dbadapter.NewFeedQueueRepositoryDatabase()
	feedRedis := redisadapter.NewFeedRepositoryRedis(config.RedisClient)

	guard := ownership.NewGuard(postRepo, commentRepo)

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	postSvc := postapp.NewPostService(postRepo, likeRepo, queueRepo, feedRedis, guard, config.Logger)
	commentSvc := commentapp.NewCommentService(commentRepo, guard)
	likeSvc := likeapp.NewLikeService(likeRepo, guard)
	feedSvc := feedapp.NewFeedService(feedRedis, postRepo)

	r := httpapi.SetupRoutes(userSvc, postSvc, commentSvc, likeSvc, feedSvc)

	batchSize, err := strconv.Atoi(os.Getenv("BATCH_SIZE"))
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}

	feedWorker := workers.NewFeedWorker(queueRepo, feedRedis, postRepo, batchSize, time.Second, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feedWorker.Run(ctx)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
