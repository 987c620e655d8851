package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

type createFormRequest struct {
	Type       string            `json:"type" form:"type" binding:"required"`
	Department string            `json:"department" form:"department" binding:"required"`
	Fields     map[string]string `json:"fields"`
}

// CreateFormRequest accepts either a JSON body or a multipart form with file
// attachments; in the multipart case "fields" is a JSON-encoded form value.
func CreateFormRequest(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createFormRequest
		var attachments []string

		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			req.Type = c.PostForm("type")
			req.Department = c.PostForm("department")
			if raw := c.PostForm("fields"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &req.Fields); err != nil {
					fail(c, http.StatusBadRequest, "fields must be a JSON object")
					return
				}
			}

			form, err := c.MultipartForm()
			if err != nil {
				fail(c, http.StatusBadRequest, "Invalid multipart form")
				return
			}
			for _, file := range form.File["attachments"] {
				path, err := saveUpload(c, file, uploadDir, "forms")
				if err != nil {
					fail(c, http.StatusInternalServerError, "Failed to store attachment")
					return
				}
				attachments = append(attachments, path)
			}
		} else if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Type and department are required")
			return
		}

		if req.Type == "" || req.Department == "" {
			fail(c, http.StatusBadRequest, "Type and department are required")
			return
		}

		formType := models.FormType(req.Type)
		if !formType.Valid() {
			fail(c, http.StatusBadRequest, "Invalid form type")
			return
		}
		if err := models.ValidateFormFields(formType, req.Fields); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		userID := middleware.CurrentUserID(c)
		form := models.FormRequest{
			Type:          formType,
			Department:    req.Department,
			Status:        models.FormPending,
			SubmittedByID: userID,
			Fields:        req.Fields,
			Attachments:   attachments,
			ApprovalLog: []models.ApprovalEntry{
				{Status: "Submitted", UpdatedByID: &userID},
			},
		}

		if err := database.DB.Create(&form).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to submit form")
			return
		}

		c.JSON(http.StatusCreated, form)
	}
}

// ListFormRequests: admin sees all, staff only their own.
func ListFormRequests(c *gin.Context) {
	q := database.DB.
		Preload("SubmittedBy").
		Preload("ApprovalLog").
		Order("created_at desc")

	if middleware.CurrentRole(c) != models.RoleAdmin {
		q = q.Where("submitted_by_id = ?", middleware.CurrentUserID(c))
	}

	var forms []models.FormRequest
	if err := q.Find(&forms).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching forms")
		return
	}
	c.JSON(http.StatusOK, forms)
}

type formStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateFormStatus changes the status and appends exactly one approval-log
// entry recording the transition.
func UpdateFormStatus(c *gin.Context) {
	var req formStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	status := models.FormStatus(req.Status)
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	var form models.FormRequest
	if err := database.DB.First(&form, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Form not found")
		return
	}

	userID := middleware.CurrentUserID(c)
	form.Status = status
	entry := models.ApprovalEntry{
		FormRequestID: form.ID,
		Status:        string(status),
		Comment:       req.Comment,
		UpdatedByID:   &userID,
	}

	// The status change and its log entry land together or not at all.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&form).Update("status", status).Error; err != nil {
			return err
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	form.ApprovalLog = append(form.ApprovalLog, entry)
	c.JSON(http.StatusOK, form)
}

type formCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

func UpdateFormComment(c *gin.Context) {
	var req formCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Comment is required")
		return
	}

	var form models.FormRequest
	if err := database.DB.First(&form, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Form not found")
		return
	}

	form.Comment = req.Comment
	if err := database.DB.Save(&form).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	c.JSON(http.StatusOK, form)
}

type acknowledgeRequest struct {
	Acknowledged bool `json:"acknowledged"`
}

func AcknowledgeForm(c *gin.Context) {
	var req acknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var form models.FormRequest
	if err := database.DB.First(&form, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Form not found")
		return
	}

	form.Acknowledged = req.Acknowledged
	if err := database.DB.Save(&form).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to acknowledge policy")
		return
	}

	c.JSON(http.StatusOK, form)
}

// FormRequestPDF renders a one-page summary of the form.
func FormRequestPDF(c *gin.Context) {
	var form models.FormRequest
	if err := database.DB.Preload("SubmittedBy").First(&form, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Form not found")
		return
	}

	submitter, submitterEmail := "N/A", "N/A"
	if form.SubmittedBy != nil {
		submitter = form.SubmittedBy.Name
		submitterEmail = form.SubmittedBy.Email
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "BU", 18)
	pdf.Cell(0, 10, "Form Request Summary")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	line := func(s string) {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	line(fmt.Sprintf("Type: %s", form.Type))
	line(fmt.Sprintf("Department: %s", form.Department))
	line(fmt.Sprintf("Submitted By: %s (%s)", submitter, submitterEmail))
	line(fmt.Sprintf("Submitted At: %s", form.CreatedAt.Format("Jan 2, 2006 3:04 PM")))
	line(fmt.Sprintf("Status: %s", form.Status))
	pdf.Ln(4)

	if len(form.Fields) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		line("Details:")
		pdf.SetFont("Helvetica", "", 12)
		for key, value := range form.Fields {
			if value != "" {
				line(fmt.Sprintf("%s: %s", key, value))
			}
		}
		pdf.Ln(4)
	}

	if form.Comment != "" {
		pdf.SetFont("Helvetica", "I", 12)
		line(fmt.Sprintf("Admin Comment: %s", form.Comment))
	}
	if form.Acknowledged {
		pdf.SetFont("Helvetica", "", 12)
		line("This request includes a policy acknowledgment.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=form-%d.pdf", form.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
