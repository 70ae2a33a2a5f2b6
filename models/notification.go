package models

import (
	"time"
)

// Notification is written as a side effect of admin decisions and polled by
// the client.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"not null"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
