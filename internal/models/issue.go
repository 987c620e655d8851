package models

import (
	"time"

	"gorm.io/gorm"
)

type IssuePriority string
type IssueStatus string

const (
	PriorityLow    IssuePriority = "Low"
	PriorityMedium IssuePriority = "Medium"
	PriorityHigh   IssuePriority = "High"

	IssueNew        IssueStatus = "New"
	IssueInProgress IssueStatus = "In Progress"
	IssueResolved   IssueStatus = "Resolved"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueNew, IssueInProgress, IssueResolved:
		return true
	}
	return false
}

type Issue struct {
	gorm.Model
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Department  string        `gorm:"size:100" json:"department"`
	Priority    IssuePriority `gorm:"type:varchar(20);not null" json:"priority"`
	Status      IssueStatus   `gorm:"type:varchar(20);not null" json:"status"`

	CreatedByID *uint `json:"createdById"`
	CreatedBy   *User `json:"createdBy"`
	AssignedTo  *uint `json:"assignedTo"`

	// Set on public submissions, where there is no caller identity.
	SubmittedBy  string `gorm:"size:20" json:"submittedBy,omitempty"`
	ContactName  string `gorm:"size:255" json:"contactName,omitempty"`
	ContactEmail string `gorm:"size:255" json:"contactEmail,omitempty"`

	Archived   bool       `gorm:"not null;default:false" json:"archived"`
	ResolvedAt *time.Time `json:"resolvedAt"`

	Comments []IssueComment `json:"comments"`
}

type IssueComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	IssueID  uint  `gorm:"index;not null" json:"issueId"`
	AuthorID *uint `json:"authorId"`
	Author   *User `json:"author"`

	Text string `gorm:"type:text;not null" json:"text"`
}
