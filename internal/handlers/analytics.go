package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/analytics"
	"github.com/austintylerallen/civicstack/internal/database"
)

func Analytics(c *gin.Context) {
	summary, err := analytics.Aggregate(database.DB)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error fetching analytics")
		return
	}
	c.JSON(http.StatusOK, summary)
}
