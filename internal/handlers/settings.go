package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/models"
)

func ListSettings(c *gin.Context) {
	var settings []models.Setting
	if err := database.DB.Order("key asc").Find(&settings).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func GetSetting(c *gin.Context) {
	var setting models.Setting
	if err := database.DB.Where("key = ?", c.Param("key")).First(&setting).Error; err != nil {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	c.JSON(http.StatusOK, setting)
}

type upsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func UpsertSetting(c *gin.Context) {
	var req upsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Key is required")
		return
	}

	setting := models.Setting{Key: req.Key, Value: req.Value}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save setting")
		return
	}

	c.JSON(http.StatusOK, setting)
}

func DeleteSetting(c *gin.Context) {
	if err := database.DB.Where("key = ?", c.Param("key")).
		Delete(&models.Setting{}).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete setting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
