package models

import "gorm.io/gorm"

type RecruitmentStatus string

const (
	RecruitmentRequested RecruitmentStatus = "Requested"
	RecruitmentApproved  RecruitmentStatus = "Approved"
	RecruitmentInHiring  RecruitmentStatus = "In Hiring"
	RecruitmentHired     RecruitmentStatus = "Hired"
	RecruitmentRejected  RecruitmentStatus = "Rejected"
)

func (s RecruitmentStatus) Valid() bool {
	switch s {
	case RecruitmentRequested, RecruitmentApproved, RecruitmentInHiring,
		RecruitmentHired, RecruitmentRejected:
		return true
	}
	return false
}

// RecruitmentRequest is an internal request to open a position, distinct from
// the public-facing Job posting it may eventually produce.
type RecruitmentRequest struct {
	gorm.Model
	Title         string            `gorm:"size:255;not null" json:"title"`
	Department    string            `gorm:"size:100;not null" json:"department"`
	Justification string            `gorm:"type:text;not null" json:"justification"`
	Status        RecruitmentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Notes         string            `gorm:"type:text" json:"notes"`

	Attachments []string `gorm:"serializer:json" json:"attachments"`

	CreatedByID uint  `gorm:"not null" json:"createdById"`
	CreatedBy   *User `json:"createdBy"`
}
