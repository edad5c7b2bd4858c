package httpapi

import (
	"errors"
	"net/http"

	"weblog/internal/core/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps the core error kinds onto status codes: NotFound
// 404, Forbidden 403, Validation 400, anything else 500.
func respondError(c *gin.Context, err error) {
	var nf *apperr.NotFoundError
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// actorID pulls the authenticated user's id set by the JWT middleware.
func actorID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return "", false
	}
	return userID.(string), true
}
