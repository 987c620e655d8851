package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

func ListAnnouncements(c *gin.Context) {
	var announcements []models.Announcement
	if err := database.DB.
		Preload("Author").
		Order("pinned desc, created_at desc").
		Find(&announcements).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}
	c.JSON(http.StatusOK, announcements)
}

type createAnnouncementRequest struct {
	Title      string `json:"title" form:"title" binding:"required"`
	Content    string `json:"content" form:"content" binding:"required"`
	Department string `json:"department" form:"department" binding:"required"`
	Pinned     bool   `json:"pinned" form:"pinned"`
}

func CreateAnnouncement(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createAnnouncementRequest
		if err := c.ShouldBind(&req); err != nil {
			fail(c, http.StatusBadRequest, "Title, content and department are required")
			return
		}

		var attachment string
		if file, err := c.FormFile("attachment"); err == nil {
			path, err := saveUpload(c, file, uploadDir, "announcements")
			if err != nil {
				fail(c, http.StatusInternalServerError, "Failed to store attachment")
				return
			}
			attachment = path
		}

		announcement := models.Announcement{
			Title:      req.Title,
			Content:    req.Content,
			Department: req.Department,
			Pinned:     req.Pinned,
			Attachment: attachment,
			AuthorID:   middleware.CurrentUserID(c),
		}

		if err := database.DB.Create(&announcement).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to create announcement")
			return
		}

		c.JSON(http.StatusCreated, announcement)
	}
}

func DeleteAnnouncement(c *gin.Context) {
	var announcement models.Announcement
	if err := database.DB.First(&announcement, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Announcement not found")
		return
	}

	if err := database.DB.Delete(&announcement).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete announcement")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
