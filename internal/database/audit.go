package database

import (
	"github.com/rs/zerolog/log"

	"github.com/austintylerallen/civicstack/internal/models"
)

// RecordAudit appends one audit entry. Failures are logged and swallowed: a
// lost audit record must not fail the mutation that triggered it.
func RecordAudit(userID uint, action string, targetID uint, targetType string, metadata map[string]any) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		Action:     action,
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
		Metadata:   metadata,
	}
	if err := DB.Create(&record).Error; err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to record audit entry")
	}
}

// Notify creates one unread in-app notification. Best-effort, same as audit.
func Notify(ntype models.NotificationType, message string, issueID uint) {
	if DB == nil {
		return
	}
	n := models.Notification{
		Type:    ntype,
		Message: message,
	}
	if issueID != 0 {
		n.IssueID = &issueID
	}
	if err := DB.Create(&n).Error; err != nil {
		log.Warn().Err(err).Str("type", string(ntype)).Msg("failed to create notification")
	}
}
