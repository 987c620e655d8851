package handlers

import "github.com/gin-gonic/gin"

// All error bodies are {"message": ...} so the client can surface them
// directly.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
