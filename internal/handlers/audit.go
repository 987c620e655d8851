package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/models"
)

// ListAuditLogs returns the most recent audit entries with actors resolved.
// Optional ?user= and ?action= filters.
func ListAuditLogs(c *gin.Context) {
	q := database.DB.
		Preload("User").
		Order("created_at desc").
		Limit(50)

	if user := c.Query("user"); user != "" {
		q = q.Where("user_id = ?", user)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Server error fetching audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
