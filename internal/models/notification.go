package models

import "time"

type NotificationType string

const (
	NotifyNewIssue     NotificationType = "new_issue"
	NotifyNewComment   NotificationType = "new_comment"
	NotifyStatusUpdate NotificationType = "status_update"
)

// Notification is a lightweight in-app alert. Read state is global, not
// per-viewer: one admin marking it read marks it read for everyone.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Type    NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Message string           `gorm:"type:text;not null" json:"message"`
	IssueID *uint            `json:"issueId,omitempty"`
	IsRead  bool             `gorm:"not null;default:false" json:"isRead"`
}
