package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

type createProjectRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	Department  string `json:"department" form:"department" binding:"required"`
	Status      string `json:"status" form:"status"`
}

// CreateDevelopmentProject seeds the fixed department review checklist on
// every new project.
func CreateDevelopmentProject(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProjectRequest
		if err := c.ShouldBind(&req); err != nil {
			fail(c, http.StatusBadRequest, "Name and department are required")
			return
		}

		status := models.DevProjectStatus(req.Status)
		if req.Status == "" {
			status = models.DevProjectSubmitted
		}
		if !status.Valid() {
			fail(c, http.StatusBadRequest, "Invalid status value")
			return
		}

		var attachments []string
		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if form, err := c.MultipartForm(); err == nil {
				for _, file := range form.File["attachments"] {
					path, err := saveUpload(c, file, uploadDir, "projects")
					if err != nil {
						fail(c, http.StatusInternalServerError, "Failed to store attachment")
						return
					}
					attachments = append(attachments, path)
				}
			}
		}

		reviews := make([]models.DepartmentReview, 0, len(models.ReviewDepartments))
		for _, name := range models.ReviewDepartments {
			reviews = append(reviews, models.DepartmentReview{Name: name})
		}

		project := models.DevelopmentProject{
			Name:        req.Name,
			Description: req.Description,
			Department:  req.Department,
			Status:      status,
			ApplicantID: middleware.CurrentUserID(c),
			Attachments: attachments,
			Departments: reviews,
		}

		if err := database.DB.Create(&project).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Submission failed")
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

// ListDevelopmentProjects: admin sees all, staff only their own submissions.
func ListDevelopmentProjects(c *gin.Context) {
	q := database.DB.
		Preload("Applicant").
		Preload("Departments").
		Preload("Comments.Author").
		Order("created_at desc")

	if middleware.CurrentRole(c) != models.RoleAdmin {
		q = q.Where("applicant_id = ?", middleware.CurrentUserID(c))
	}

	var projects []models.DevelopmentProject
	if err := q.Find(&projects).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

type projectCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func AddProjectComment(c *gin.Context) {
	var req projectCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Comment content is required")
		return
	}

	var project models.DevelopmentProject
	if err := database.DB.First(&project, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Project not found")
		return
	}

	comment := models.ProjectComment{
		DevelopmentProjectID: project.ID,
		AuthorID:             middleware.CurrentUserID(c),
		Content:              req.Content,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	var comments []models.ProjectComment
	if err := database.DB.Preload("Author").
		Where("development_project_id = ?", project.ID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	c.JSON(http.StatusCreated, comments)
}

func DeleteProjectComment(c *gin.Context) {
	var project models.DevelopmentProject
	if err := database.DB.First(&project, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Project not found")
		return
	}

	var comment models.ProjectComment
	if err := database.DB.
		Where("development_project_id = ?", project.ID).
		First(&comment, c.Param("cid")).Error; err != nil {
		fail(c, http.StatusNotFound, "Comment not found")
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

func DeleteDevelopmentProject(c *gin.Context) {
	var project models.DevelopmentProject
	if err := database.DB.First(&project, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Project not found")
		return
	}

	if err := database.DB.Delete(&project).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type departmentCheckRequest struct {
	Department string `json:"department" binding:"required"`
	Reviewed   bool   `json:"reviewed"`
}

// ToggleDepartmentReview flips one department's sign-off. Reviews are
// independent: project status is staff-set and never derived from them.
func ToggleDepartmentReview(c *gin.Context) {
	var req departmentCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Department is required")
		return
	}

	var project models.DevelopmentProject
	if err := database.DB.Preload("Departments").First(&project, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Project not found")
		return
	}

	for i := range project.Departments {
		if project.Departments[i].Name == req.Department {
			project.Departments[i].Reviewed = req.Reviewed
			if err := database.DB.Save(&project.Departments[i]).Error; err != nil {
				fail(c, http.StatusInternalServerError, "Update failed")
				return
			}
			break
		}
	}

	c.JSON(http.StatusOK, project)
}

type projectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func UpdateProjectStatus(c *gin.Context) {
	var req projectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	status := models.DevProjectStatus(req.Status)
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	var project models.DevelopmentProject
	if err := database.DB.First(&project, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Project not found")
		return
	}

	project.Status = status
	if err := database.DB.Save(&project).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, project)
}
