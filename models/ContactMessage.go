package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a contact form submission kept in the optional inbox.
type ContactMessage struct {
	gorm.Model
	Reference  string    `gorm:"uniqueIndex;type:varchar(36);not null" json:"reference"`
	Name       string    `json:"name"`
	Email      string    `gorm:"index" json:"email"`
	Message    string    `gorm:"type:text" json:"message"`
	ReceivedAt time.Time `gorm:"not null" json:"received_at"`
}
