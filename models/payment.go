package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Payment is a one-shot extra-listing top-up reviewed by an admin.
type Payment struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"userId" gorm:"not null;index"`
	User            User          `json:"user" gorm:"foreignKey:UserID"`
	Amount          float64       `json:"amount" gorm:"not null"`
	PaymentMethod   string        `json:"paymentMethod" gorm:"not null"`
	ReferenceNumber string        `json:"referenceNumber" gorm:"not null"`
	Screenshot      string        `json:"screenshot"`
	Status          PaymentStatus `json:"status" gorm:"type:varchar(10);default:'PENDING'"`
	ApprovedAt      *time.Time    `json:"approvedAt"`
	ApprovedBy      *uint         `json:"approvedBy"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// PaymentCreate model for submitting a payment for review
type PaymentCreate struct {
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required"`
	ReferenceNumber string  `json:"referenceNumber" binding:"required"`
	Screenshot      string  `json:"screenshot"`
}

func (Payment) TableName() string {
	return "payments"
}
