package models

import (
	"time"
)

// Message is a chat message tied to a vehicle listing. Conversations have no
// table of their own: they are derived by grouping on (vehicle_id, other user).
type Message struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SenderID   uint       `json:"senderId" gorm:"not null;index"`
	ReceiverID uint       `json:"receiverId" gorm:"not null;index"`
	VehicleID  uint       `json:"vehicleId" gorm:"not null;index"`
	Content    string     `json:"content" gorm:"not null"`
	ReadAt     *time.Time `json:"readAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// MessageCreate model for sending a message
type MessageCreate struct {
	ReceiverID uint   `json:"receiverId" binding:"required"`
	VehicleID  uint   `json:"vehicleId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// MarkReadInput identifies one conversation side to mark as read
type MarkReadInput struct {
	VehicleID uint `json:"vehicleId" binding:"required"`
	SenderID  uint `json:"senderId" binding:"required"`
}

func (Message) TableName() string {
	return "messages"
}
