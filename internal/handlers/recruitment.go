package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

type createRecruitmentRequest struct {
	Title         string `json:"title" binding:"required"`
	Department    string `json:"department" binding:"required"`
	Justification string `json:"justification" binding:"required"`
}

func CreateRecruitmentRequest(c *gin.Context) {
	var req createRecruitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Title, department and justification are required")
		return
	}

	rec := models.RecruitmentRequest{
		Title:         req.Title,
		Department:    req.Department,
		Justification: req.Justification,
		Status:        models.RecruitmentRequested,
		CreatedByID:   middleware.CurrentUserID(c),
	}

	if err := database.DB.Create(&rec).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create recruitment entry")
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func ListRecruitmentRequests(c *gin.Context) {
	q := database.DB.Preload("CreatedBy").Order("created_at desc")
	if middleware.CurrentRole(c) != models.RoleAdmin {
		q = q.Where("created_by_id = ?", middleware.CurrentUserID(c))
	}

	var recs []models.RecruitmentRequest
	if err := q.Find(&recs).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch recruitments")
		return
	}
	c.JSON(http.StatusOK, recs)
}

type recruitmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func UpdateRecruitmentStatus(c *gin.Context) {
	var req recruitmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	status := models.RecruitmentStatus(req.Status)
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	var rec models.RecruitmentRequest
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Recruitment request not found")
		return
	}

	rec.Status = status
	if err := database.DB.Save(&rec).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, rec)
}

type recruitmentNotesRequest struct {
	Notes string `json:"notes"`
}

func UpdateRecruitmentNotes(c *gin.Context) {
	var req recruitmentNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var rec models.RecruitmentRequest
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Recruitment request not found")
		return
	}

	rec.Notes = req.Notes
	if err := database.DB.Save(&rec).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update notes")
		return
	}

	c.JSON(http.StatusOK, rec)
}

func DeleteRecruitmentRequest(c *gin.Context) {
	var rec models.RecruitmentRequest
	if err := database.DB.First(&rec, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Recruitment request not found")
		return
	}

	if err := database.DB.Delete(&rec).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete record")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
