package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/austintylerallen/civicstack/internal/analytics"
	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

// ListIssues returns issues newest first. Admins see archived issues; staff
// do not. The archival sweep runs before the query.
func ListIssues(c *gin.Context) {
	if _, err := analytics.SweepArchive(database.DB); err != nil {
		log.Warn().Err(err).Msg("archive sweep failed")
	}

	q := database.DB.
		Preload("CreatedBy").
		Preload("Comments.Author").
		Order("created_at desc")

	if middleware.CurrentRole(c) != models.RoleAdmin {
		q = q.Where("archived = ?", false)
	}

	var issues []models.Issue
	if err := q.Find(&issues).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Server error fetching issues")
		return
	}

	c.JSON(http.StatusOK, issues)
}

type createIssueRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Priority    string `json:"priority"`
}

func CreateIssue(c *gin.Context) {
	var req createIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Title is required")
		return
	}

	priority := models.IssuePriority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityLow
	}
	if !priority.Valid() {
		fail(c, http.StatusBadRequest, "Invalid priority value")
		return
	}

	userID := middleware.CurrentUserID(c)
	issue := models.Issue{
		Title:       req.Title,
		Description: req.Description,
		Department:  req.Department,
		Priority:    priority,
		Status:      models.IssueNew,
		CreatedByID: &userID,
	}

	if err := database.DB.Create(&issue).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error creating issue")
		return
	}

	database.RecordAudit(userID, "Created Issue", issue.ID, models.TargetIssue, map[string]any{
		"title":      issue.Title,
		"department": issue.Department,
	})
	database.Notify(models.NotifyNewIssue, fmt.Sprintf("New issue submitted: %q", issue.Title), issue.ID)

	c.JSON(http.StatusCreated, issue)
}

type updateIssueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func UpdateIssueStatus(c *gin.Context) {
	var req updateIssueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	status := models.IssueStatus(req.Status)
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	var issue models.Issue
	if err := database.DB.First(&issue, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Issue not found")
		return
	}

	oldStatus := issue.Status
	issue.Status = status
	if status == models.IssueResolved && issue.ResolvedAt == nil {
		now := time.Now()
		issue.ResolvedAt = &now
	}

	if err := database.DB.Save(&issue).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	userID := middleware.CurrentUserID(c)
	database.RecordAudit(userID, "Updated Status", issue.ID, models.TargetIssue, map[string]any{
		"from": string(oldStatus),
		"to":   string(status),
	})
	database.Notify(models.NotifyStatusUpdate,
		fmt.Sprintf("Status updated to %q for %q", status, issue.Title), issue.ID)

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": issue})
}

type addCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func AddIssueComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Comment text is required")
		return
	}

	var issue models.Issue
	if err := database.DB.First(&issue, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Issue not found")
		return
	}

	userID := middleware.CurrentUserID(c)
	comment := models.IssueComment{
		IssueID:  issue.ID,
		AuthorID: &userID,
		Text:     req.Text,
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	database.RecordAudit(userID, "Added Comment", issue.ID, models.TargetComment, map[string]any{
		"commentId": comment.ID,
		"text":      comment.Text,
	})
	database.Notify(models.NotifyNewComment,
		fmt.Sprintf("New comment on %q: %q", issue.Title, comment.Text), issue.ID)

	c.JSON(http.StatusCreated, comment)
}

func DeleteIssueComment(c *gin.Context) {
	var issue models.Issue
	if err := database.DB.First(&issue, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Issue not found")
		return
	}

	var comment models.IssueComment
	if err := database.DB.
		Where("issue_id = ?", issue.ID).
		First(&comment, c.Param("cid")).Error; err != nil {
		fail(c, http.StatusNotFound, "Comment not found")
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	database.RecordAudit(middleware.CurrentUserID(c), "Deleted Comment", issue.ID, models.TargetComment, map[string]any{
		"commentId": comment.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "commentId": comment.ID})
}

// ArchiveIssue archives one issue ahead of the yearly sweep. Admin only.
func ArchiveIssue(c *gin.Context) {
	var issue models.Issue
	if err := database.DB.First(&issue, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Issue not found")
		return
	}

	issue.Archived = true
	if err := database.DB.Save(&issue).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	database.RecordAudit(middleware.CurrentUserID(c), "Archived Issue", issue.ID, models.TargetIssue, nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Issue archived", "issue": issue})
}

// ExportIssuesCSV streams non-archived issues as CSV.
func ExportIssuesCSV(c *gin.Context) {
	var issues []models.Issue
	if err := database.DB.Where("archived = ?", false).
		Order("created_at desc").
		Find(&issues).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error generating CSV")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="issues_export.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"title", "department", "priority", "status", "createdAt"})
	for _, issue := range issues {
		w.Write([]string{
			issue.Title,
			issue.Department,
			string(issue.Priority),
			string(issue.Status),
			issue.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Warn().Err(err).Msg("csv export write failed")
	}
}

type publicIssueRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Priority    string `json:"priority"`
}

// CreatePublicIssue accepts anonymous submissions. With no caller identity the
// payload must carry contact details instead.
func CreatePublicIssue(c *gin.Context) {
	var req publicIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Title == "" || req.Department == "" {
		fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	priority := models.IssuePriority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityLow
	}
	if !priority.Valid() {
		fail(c, http.StatusBadRequest, "Invalid priority value")
		return
	}

	issue := models.Issue{
		Title:        req.Title,
		Description:  req.Description,
		Department:   req.Department,
		Priority:     priority,
		Status:       models.IssueNew,
		SubmittedBy:  "public",
		ContactName:  req.Name,
		ContactEmail: req.Email,
	}

	if err := database.DB.Create(&issue).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Server error submitting issue")
		return
	}

	database.Notify(models.NotifyNewIssue, fmt.Sprintf("New issue submitted: %q", issue.Title), issue.ID)

	c.JSON(http.StatusCreated, gin.H{"message": "Issue submitted", "issue": issue})
}
