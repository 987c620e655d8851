package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/austintylerallen/civicstack/internal/config"
	"github.com/austintylerallen/civicstack/internal/handlers"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", cfg.UploadDir)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)
	publicLimiter := middleware.NewRateLimiter(cfg.PublicRateRPS, cfg.PublicRateRPS*2)

	// AUTH
	r.POST("/auth/login", handlers.Login(cfg.JWTSecret))
	r.GET("/auth/me", requireAuth, handlers.Me)

	// PUBLIC — anonymous writers, rate limited
	public := r.Group("/public", publicLimiter.Handler())
	public.POST("/issues", handlers.CreatePublicIssue)

	// ISSUES
	issues := r.Group("/issues", requireAuth)
	issues.GET("", handlers.ListIssues)
	issues.POST("", handlers.CreateIssue)
	issues.GET("/export", handlers.ExportIssuesCSV)
	issues.PATCH("/:id", handlers.UpdateIssueStatus)
	issues.PATCH("/:id/archive", requireAdmin, handlers.ArchiveIssue)
	issues.POST("/:id/comments", handlers.AddIssueComment)
	issues.DELETE("/:id/comments/:cid", requireAdmin, handlers.DeleteIssueComment)

	// WORK ORDERS
	workOrders := r.Group("/work-orders", requireAuth)
	workOrders.GET("", handlers.ListWorkOrders)
	workOrders.POST("", handlers.CreateWorkOrder)
	workOrders.PATCH("/:id", handlers.UpdateWorkOrder)
	workOrders.PATCH("/:id/status", handlers.UpdateWorkOrderStatus)
	workOrders.DELETE("/:id", requireAdmin, handlers.DeleteWorkOrder)

	// FORM REQUESTS
	forms := r.Group("/form-requests", requireAuth)
	forms.GET("", handlers.ListFormRequests)
	forms.POST("", handlers.CreateFormRequest(cfg.UploadDir))
	forms.PATCH("/:id/status", requireAdmin, handlers.UpdateFormStatus)
	forms.PATCH("/:id/comment", requireAdmin, handlers.UpdateFormComment)
	forms.PATCH("/:id/acknowledge", handlers.AcknowledgeForm)
	forms.GET("/:id/pdf", handlers.FormRequestPDF)

	// ANNOUNCEMENTS. Admin enforcement on create/delete is configurable,
	// see config.EnforceAnnouncementAdmin.
	announcements := r.Group("/announcements", requireAuth)
	announcements.GET("", handlers.ListAnnouncements)
	if cfg.EnforceAnnouncementAdmin {
		announcements.POST("", requireAdmin, handlers.CreateAnnouncement(cfg.UploadDir))
		announcements.DELETE("/:id", requireAdmin, handlers.DeleteAnnouncement)
	} else {
		announcements.POST("", handlers.CreateAnnouncement(cfg.UploadDir))
		announcements.DELETE("/:id", handlers.DeleteAnnouncement)
	}

	// DEVELOPMENT PROJECTS
	projects := r.Group("/development-projects", requireAuth)
	projects.GET("", handlers.ListDevelopmentProjects)
	projects.POST("", handlers.CreateDevelopmentProject(cfg.UploadDir))
	projects.POST("/:id/comments", handlers.AddProjectComment)
	projects.DELETE("/:id/comments/:cid", requireAdmin, handlers.DeleteProjectComment)
	projects.DELETE("/:id", requireAdmin, handlers.DeleteDevelopmentProject)
	projects.PATCH("/:id/department-check", handlers.ToggleDepartmentReview)
	projects.PATCH("/:id/status", handlers.UpdateProjectStatus)

	// CAREERS
	careers := r.Group("/careers")
	careers.GET("", handlers.ListJobs)
	careers.POST("", requireAuth, requireAdmin, handlers.CreateJob)
	careers.DELETE("/:id", requireAuth, requireAdmin, handlers.DeleteJob)
	careers.POST("/apply", publicLimiter.Handler(), handlers.ApplyToJob(cfg.UploadDir))
	careers.GET("/applicants", requireAuth, requireAdmin, handlers.ListApplicants)
	careers.PATCH("/applicants/:id/status", requireAuth, requireAdmin, handlers.UpdateApplicationStatus)

	// RECRUITMENT (internal)
	recruitment := r.Group("/recruitment", requireAuth)
	recruitment.GET("", handlers.ListRecruitmentRequests)
	recruitment.POST("", requireAdmin, handlers.CreateRecruitmentRequest)
	recruitment.PATCH("/:id/status", requireAdmin, handlers.UpdateRecruitmentStatus)
	recruitment.PATCH("/:id/notes", requireAdmin, handlers.UpdateRecruitmentNotes)
	recruitment.DELETE("/:id", requireAdmin, handlers.DeleteRecruitmentRequest)

	// ADMIN
	admin := r.Group("/admin", requireAuth)
	admin.GET("/analytics", handlers.Analytics)
	admin.GET("/audit-logs", requireAdmin, handlers.ListAuditLogs)
	admin.GET("/notifications", requireAdmin, handlers.ListNotifications)
	admin.PATCH("/notifications/:id/read", requireAdmin, handlers.MarkNotificationRead)

	// SETTINGS (admin)
	settings := r.Group("/settings", requireAuth, requireAdmin)
	settings.GET("", handlers.ListSettings)
	settings.GET("/:key", handlers.GetSetting)
	settings.POST("", handlers.UpsertSetting)
	settings.DELETE("/:key", handlers.DeleteSetting)

	// USERS
	r.PATCH("/users/profile", requireAuth, handlers.UpdateProfile)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
