package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response envelope: {"success": bool, "count"?: int, "data": ..., "error"?: string}

func respondList(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}
