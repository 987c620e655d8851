package models

import (
	"time"

	"gorm.io/gorm"
)

type DevProjectStatus string

const (
	DevProjectSubmitted   DevProjectStatus = "Submitted"
	DevProjectUnderReview DevProjectStatus = "Under Review"
	DevProjectApproved    DevProjectStatus = "Approved"
	DevProjectInProgress  DevProjectStatus = "In Progress"
	DevProjectCompleted   DevProjectStatus = "Completed"
)

func (s DevProjectStatus) Valid() bool {
	switch s {
	case DevProjectSubmitted, DevProjectUnderReview, DevProjectApproved,
		DevProjectInProgress, DevProjectCompleted:
		return true
	}
	return false
}

// ReviewDepartments is the fixed set of sign-offs seeded on every new project.
var ReviewDepartments = []string{"Planning", "Building", "Fire", "Utilities"}

type DevelopmentProject struct {
	gorm.Model
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Department  string           `gorm:"size:100;not null" json:"department"`
	Status      DevProjectStatus `gorm:"type:varchar(20);not null" json:"status"`

	ApplicantID uint  `gorm:"not null" json:"applicantId"`
	Applicant   *User `json:"applicant"`

	Attachments []string `gorm:"serializer:json" json:"attachments"`

	Departments []DepartmentReview `json:"departments"`
	Comments    []ProjectComment   `json:"comments"`
}

type DepartmentReview struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	DevelopmentProjectID uint   `gorm:"index;not null" json:"projectId"`
	Name                 string `gorm:"size:100;not null" json:"name"`
	Reviewed             bool   `gorm:"not null;default:false" json:"reviewed"`
}

type ProjectComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	DevelopmentProjectID uint  `gorm:"index;not null" json:"projectId"`
	AuthorID             uint  `gorm:"not null" json:"authorId"`
	Author               *User `json:"author"`

	Content string `gorm:"type:text;not null" json:"content"`
}
