package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type FormType string
type FormStatus string

const (
	FormLeaveRequest  FormType = "Leave Request"
	FormExpenseReport FormType = "Expense Report"
	FormTimesheet     FormType = "Timesheet"
	FormOther         FormType = "Other"
	FormPolicyAck     FormType = "Policy Acknowledgment"

	FormPending  FormStatus = "Pending"
	FormApproved FormStatus = "Approved"
	FormRejected FormStatus = "Rejected"
)

func (t FormType) Valid() bool {
	_, ok := requiredFormFields[t]
	return ok
}

func (s FormStatus) Valid() bool {
	switch s {
	case FormPending, FormApproved, FormRejected:
		return true
	}
	return false
}

// Required field keys per form type. Adding a new form type means adding an
// entry here; validation and the type enum both read from this registry.
var requiredFormFields = map[FormType][]string{
	FormLeaveRequest:  {"startDate", "endDate", "reason"},
	FormExpenseReport: {"amount", "description"},
	FormTimesheet:     {"periodStart", "periodEnd", "hours"},
	FormOther:         {"description"},
	FormPolicyAck:     {"policyName"},
}

// ValidateFormFields checks that every field the form type requires is present
// and non-empty.
func ValidateFormFields(t FormType, fields map[string]string) error {
	required, ok := requiredFormFields[t]
	if !ok {
		return fmt.Errorf("unknown form type %q", t)
	}
	for _, key := range required {
		if fields[key] == "" {
			return fmt.Errorf("missing required field %q", key)
		}
	}
	return nil
}

type FormRequest struct {
	gorm.Model
	Type       FormType   `gorm:"type:varchar(50);not null" json:"type"`
	Department string     `gorm:"size:100;not null" json:"department"`
	Status     FormStatus `gorm:"type:varchar(20);not null" json:"status"`

	SubmittedByID uint  `gorm:"not null" json:"submittedById"`
	SubmittedBy   *User `json:"submittedBy"`

	Fields       map[string]string `gorm:"serializer:json" json:"fields"`
	Attachments  []string          `gorm:"serializer:json" json:"attachments"`
	Comment      string            `gorm:"type:text" json:"comment"`
	Acknowledged bool              `gorm:"not null;default:false" json:"acknowledged"`

	ApprovalLog []ApprovalEntry `json:"approvalLog"`
}

// ApprovalEntry is one append-only record of a form status transition.
type ApprovalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"timestamp"`

	FormRequestID uint   `gorm:"index;not null" json:"formRequestId"`
	Status        string `gorm:"size:20;not null" json:"status"`
	Comment       string `gorm:"type:text" json:"comment"`
	UpdatedByID   *uint  `json:"updatedById"`
	UpdatedBy     *User  `json:"updatedBy"`
}
