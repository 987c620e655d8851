package models

import "time"

// Setting is an admin-managed key/value pair; values are opaque to the
// server. Deletes are hard so a key can be recreated after removal.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
