package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

// ListJobs is public: anyone browsing careers can see the postings.
func ListJobs(c *gin.Context) {
	var jobs []models.Job
	if err := database.DB.Order("created_at desc").Find(&jobs).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

type createJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Department   string `json:"department" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Status       string `json:"status"`
}

func CreateJob(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Title, department and description are required")
		return
	}

	status := models.JobStatus(req.Status)
	if req.Status == "" {
		status = models.JobOpen
	}
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	userID := middleware.CurrentUserID(c)
	job := models.Job{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Status:       status,
		PostedByID:   &userID,
	}

	if err := database.DB.Create(&job).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, job)
}

func DeleteJob(c *gin.Context) {
	var job models.Job
	if err := database.DB.First(&job, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Job not found")
		return
	}

	if err := database.DB.Delete(&job).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// ApplyToJob is the public application endpoint: multipart with an optional
// resume file, or plain JSON.
func ApplyToJob(uploadDir string) gin.HandlerFunc {
	type applyRequest struct {
		FullName      string `json:"fullName" form:"fullName"`
		Email         string `json:"email" form:"email"`
		JobID         uint   `json:"jobId" form:"jobId"`
		WhyInterested string `json:"whyInterested" form:"whyInterested"`
		Experience    string `json:"experience" form:"experience"`
	}

	return func(c *gin.Context) {
		var req applyRequest
		if err := c.ShouldBind(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.FullName == "" || req.Email == "" || req.JobID == 0 {
			fail(c, http.StatusBadRequest, "Full name, email and job are required")
			return
		}

		var job models.Job
		if err := database.DB.First(&job, req.JobID).Error; err != nil {
			fail(c, http.StatusNotFound, "Job not found")
			return
		}

		var resumeURL string
		if file, err := c.FormFile("resume"); err == nil {
			path, err := saveUpload(c, file, uploadDir, "resumes")
			if err != nil {
				fail(c, http.StatusInternalServerError, "Failed to store resume")
				return
			}
			resumeURL = path
		}

		application := models.Application{
			FullName:      req.FullName,
			Email:         req.Email,
			JobID:         job.ID,
			ResumeURL:     resumeURL,
			Status:        models.ApplicationSubmitted,
			WhyInterested: req.WhyInterested,
			Experience:    req.Experience,
		}

		if err := database.DB.Create(&application).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to submit application")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Application submitted", "application": application})
	}
}

type applicantView struct {
	ID        uint   `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	JobTitle  string `json:"jobTitle"`
	ResumeURL string `json:"resumeUrl"`
	Status    string `json:"status"`
}

func ListApplicants(c *gin.Context) {
	var apps []models.Application
	if err := database.DB.Preload("Job").Order("created_at desc").Find(&apps).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch applicants")
		return
	}

	out := make([]applicantView, 0, len(apps))
	for _, a := range apps {
		title := "Unknown"
		if a.Job != nil {
			title = a.Job.Title
		}
		out = append(out, applicantView{
			ID:        a.ID,
			FullName:  a.FullName,
			Email:     a.Email,
			JobTitle:  title,
			ResumeURL: a.ResumeURL,
			Status:    string(a.Status),
		})
	}
	c.JSON(http.StatusOK, out)
}

type applicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func UpdateApplicationStatus(c *gin.Context) {
	var req applicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	var application models.Application
	if err := database.DB.First(&application, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Application not found")
		return
	}

	application.Status = status
	if err := database.DB.Save(&application).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update application")
		return
	}

	c.JSON(http.StatusOK, application)
}
