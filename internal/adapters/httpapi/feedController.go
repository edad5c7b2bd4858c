package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController {
	return &FeedController{fc: fc}
}

func (ctl *FeedController) RecentPosts(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	posts, err := ctl.fc.RecentPosts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": posts})
}
