package handlers

import (
	"net/http"

	"vibenav/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health with the last backing-store snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Hi, I'm Vibe Navigator",
		"stores":  utils.GetHealthStatus(),
	})
}
