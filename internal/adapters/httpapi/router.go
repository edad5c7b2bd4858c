package httpapi

import (
	"context"

	"weblog/internal/adapters/httpapi/middleware"
	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
	userPort "weblog/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: the interfaces the controllers need from the use cases.

type UserUseCase interface {
	RegisterUser(ctx context.Context, username, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
}

type PostUseCase interface {
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	CreatePost(ctx context.Context, authorID, title, body string) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, id string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, id, actorID, title, body string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id, actorID string) error
}

type CommentUseCase interface {
	CommentsOfPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error)
	AddComment(ctx context.Context, actorID, postID, body string) (*commentPort.CommentDTO, error)
	UpdateComment(ctx context.Context, id, actorID, body string) (*commentPort.CommentDTO, error)
	DeleteComment(ctx context.Context, id, actorID string) (string, error)
}

type LikeUseCase interface {
	Like(ctx context.Context, actorID, postID string) error
	Unlike(ctx context.Context, actorID, postID string) error
	LikerIDs(ctx context.Context, postID string) ([]string, error)
}

type FeedUseCase interface {
	RecentPosts(ctx context.Context, limit int64) ([]*postPort.PostDTO, error)
}

// SetupRoutes wires controllers to routes; use cases are injected.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	likeUC LikeUseCase,
	feedUC FeedUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	cc := NewCommentController(commentUC)
	lc := NewLikeController(likeUC)
	fc := NewFeedController(feedUC)

	// public
	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)
	r.GET("/posts", pc.ListPosts)
	r.GET("/posts/:id", pc.GetPost)
	r.GET("/posts/:id/comments", cc.CommentsOfPost)
	r.GET("/posts/:id/likers", lc.LikerIDs)
	r.GET("/feed", fc.RecentPosts)

	// mutations require a valid token
	auth := r.Group("/", middleware.JWTAuthMiddleware())
	auth.POST("/posts", pc.CreatePost)
	auth.PUT("/posts/:id", pc.UpdatePost)
	auth.DELETE("/posts/:id", pc.DeletePost)
	auth.POST("/posts/:id/comments", cc.AddComment)
	auth.PUT("/comments/:id", cc.UpdateComment)
	auth.DELETE("/comments/:id", cc.DeleteComment)
	auth.POST("/posts/:id/like", lc.Like)
	auth.POST("/posts/:id/unlike", lc.Unlike)

	return r
}
