package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeController struct{ lc LikeUseCase }

func NewLikeController(lc LikeUseCase) *LikeController { return &LikeController{lc: lc} }

func (ctl *LikeController) Like(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	if err := ctl.lc.Like(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "liked"})
}

func (ctl *LikeController) Unlike(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	if err := ctl.lc.Unlike(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unliked"})
}

func (ctl *LikeController) LikerIDs(c *gin.Context) {
	ids, err := ctl.lc.LikerIDs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_ids": ids})
}
