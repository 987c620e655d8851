package models

import "gorm.io/gorm"

type JobStatus string
type ApplicationStatus string

const (
	JobOpen   JobStatus = "Open"
	JobClosed JobStatus = "Closed"

	ApplicationSubmitted    ApplicationStatus = "Submitted"
	ApplicationReviewed     ApplicationStatus = "Reviewed"
	ApplicationInterviewing ApplicationStatus = "Interviewing"
	ApplicationHired        ApplicationStatus = "Hired"
	ApplicationRejected     ApplicationStatus = "Rejected"
)

func (s JobStatus) Valid() bool {
	return s == JobOpen || s == JobClosed
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationReviewed, ApplicationInterviewing,
		ApplicationHired, ApplicationRejected:
		return true
	}
	return false
}

type Job struct {
	gorm.Model
	Title        string    `gorm:"size:255;not null" json:"title"`
	Department   string    `gorm:"size:100;not null" json:"department"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	Location     string    `gorm:"size:255" json:"location"`
	Status       JobStatus `gorm:"type:varchar(20);not null" json:"status"`

	PostedByID *uint `json:"postedById"`
	PostedBy   *User `json:"postedBy"`
}

type Application struct {
	gorm.Model
	FullName string `gorm:"size:255;not null" json:"fullName"`
	Email    string `gorm:"size:255;not null" json:"email"`

	JobID uint `gorm:"index;not null" json:"jobId"`
	Job   *Job `json:"job"`

	ResumeURL string            `gorm:"size:512" json:"resumeUrl"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Free-text questionnaire answers captured at apply time.
	WhyInterested string `gorm:"type:text" json:"whyInterested"`
	Experience    string `gorm:"type:text" json:"experience"`
}
