package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError writes the structured error body used across all routes.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"message": message,
			"status":  status,
		},
	})
}

func respondInternal(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, err.Error())
}
