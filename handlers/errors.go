package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/services"
)

// respondError maps a service error kind to its HTTP status.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.KindUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": svcErr.Message})
		case services.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": svcErr.Message})
		case services.KindBadRequest:
			c.JSON(http.StatusBadRequest, gin.H{"error": svcErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": svcErr.Message})
		}
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
