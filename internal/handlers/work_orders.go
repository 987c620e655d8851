package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

func ListWorkOrders(c *gin.Context) {
	var orders []models.WorkOrder
	if err := database.DB.
		Preload("RequestedBy").
		Preload("AssignedTo").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching work orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

type createWorkOrderRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Department  string `json:"department" binding:"required"`
	Priority    string `json:"priority"`
	AssignedTo  *uint  `json:"assignedTo"`
}

func CreateWorkOrder(c *gin.Context) {
	var req createWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Title and department are required")
		return
	}

	priority := models.IssuePriority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		fail(c, http.StatusBadRequest, "Invalid priority value")
		return
	}

	order := models.WorkOrder{
		Title:         req.Title,
		Description:   req.Description,
		Department:    req.Department,
		Priority:      priority,
		Status:        models.WorkOrderNew,
		RequestedByID: middleware.CurrentUserID(c),
		AssignedToID:  req.AssignedTo,
	}

	if err := database.DB.Create(&order).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error creating work order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

type updateWorkOrderRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Department  *string `json:"department"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssignedTo  *uint   `json:"assignedTo"`
}

func UpdateWorkOrder(c *gin.Context) {
	var req updateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var order models.WorkOrder
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Work order not found")
		return
	}

	if req.Status != nil {
		status := models.WorkOrderStatus(*req.Status)
		if !status.Valid() {
			fail(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		order.Status = status
	}
	if req.Priority != nil {
		priority := models.IssuePriority(*req.Priority)
		if !priority.Valid() {
			fail(c, http.StatusBadRequest, "Invalid priority value")
			return
		}
		order.Priority = priority
	}
	if req.Title != nil {
		order.Title = *req.Title
	}
	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.Department != nil {
		order.Department = *req.Department
	}
	if req.AssignedTo != nil {
		order.AssignedToID = req.AssignedTo
	}

	if err := database.DB.Save(&order).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error updating work order")
		return
	}

	c.JSON(http.StatusOK, order)
}

type workOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func UpdateWorkOrderStatus(c *gin.Context) {
	var req workOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	status := models.WorkOrderStatus(req.Status)
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	var order models.WorkOrder
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Work order not found")
		return
	}

	order.Status = status
	if err := database.DB.Save(&order).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error updating status")
		return
	}

	c.JSON(http.StatusOK, order)
}

func DeleteWorkOrder(c *gin.Context) {
	var order models.WorkOrder
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Work order not found")
		return
	}

	if err := database.DB.Delete(&order).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error deleting work order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
