package models

import "gorm.io/gorm"

type WorkOrderStatus string

const (
	WorkOrderNew        WorkOrderStatus = "New"
	WorkOrderInProgress WorkOrderStatus = "In Progress"
	WorkOrderCompleted  WorkOrderStatus = "Completed"
	WorkOrderCancelled  WorkOrderStatus = "Cancelled"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderNew, WorkOrderInProgress, WorkOrderCompleted, WorkOrderCancelled:
		return true
	}
	return false
}

type WorkOrder struct {
	gorm.Model
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Department  string          `gorm:"size:100;not null" json:"department"`
	Status      WorkOrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Priority    IssuePriority   `gorm:"type:varchar(20);not null" json:"priority"`

	RequestedByID uint  `gorm:"not null" json:"requestedById"`
	RequestedBy   *User `json:"requestedBy"`
	AssignedToID  *uint `json:"assignedToId"`
	AssignedTo    *User `json:"assignedTo"`
}
