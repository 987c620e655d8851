package models

import "time"

const (
	TargetIssue   = "Issue"
	TargetComment = "Comment"
)

// AuditLog is append-only: rows are created and never updated or deleted.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"timestamp"`

	Action string `gorm:"size:100;not null" json:"action"`

	UserID uint  `gorm:"not null" json:"userId"`
	User   *User `json:"user"`

	TargetID   uint   `gorm:"not null" json:"targetId"`
	TargetType string `gorm:"size:20;not null" json:"targetType"` // Issue or Comment

	Metadata map[string]any `gorm:"serializer:json" json:"metadata"`
}
