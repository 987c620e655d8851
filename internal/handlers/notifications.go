package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/models"
)

func ListNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := database.DB.
		Order("created_at desc").
		Limit(20).
		Find(&notifications).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Server error getting notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead is idempotent: marking an already-read notification
// read again is a no-op, not an error.
func MarkNotificationRead(c *gin.Context) {
	var notification models.Notification
	if err := database.DB.First(&notification, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Notification not found")
		return
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := database.DB.Save(&notification).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Server error updating notification")
			return
		}
	}

	c.JSON(http.StatusOK, notification)
}
