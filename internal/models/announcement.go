package models

import "gorm.io/gorm"

type Announcement struct {
	gorm.Model
	Title      string `gorm:"size:255;not null" json:"title"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Department string `gorm:"size:100;not null" json:"department"`
	Pinned     bool   `gorm:"not null;default:false" json:"pinned"`
	Attachment string `gorm:"size:512" json:"attachment,omitempty"`

	AuthorID uint  `gorm:"not null" json:"authorId"`
	Author   *User `json:"author"`
}
