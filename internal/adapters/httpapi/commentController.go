package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

func (ctl *CommentController) CommentsOfPost(c *gin.Context) {
	comments, err := ctl.cc.CommentsOfPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (ctl *CommentController) AddComment(c *gin.Context) {
	var req struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}
	cm, err := ctl.cc.AddComment(c.Request.Context(), uid, c.Param("id"), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

func (ctl *CommentController) UpdateComment(c *gin.Context) {
	var req struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	uid, ok := actorID(c)
	if !ok {
		return
	}
	cm, err := ctl.cc.UpdateComment(c.Request.Context(), c.Param("id"), uid, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

func (ctl *CommentController) DeleteComment(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	postID, err := ctl.cc.DeleteComment(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	// post id lets the client navigate back to the single-post view
	c.JSON(http.StatusOK, gin.H{"post_id": postID})
}
