package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusPending  SubscriptionStatus = "PENDING"
	SubscriptionStatusApproved SubscriptionStatus = "APPROVED"
	SubscriptionStatusRejected SubscriptionStatus = "REJECTED"
)

type PlanType string

const (
	PlanMonthly   PlanType = "MONTHLY"
	PlanQuarterly PlanType = "QUARTERLY"
	PlanYearly    PlanType = "YEARLY"
)

// PlanDurations maps a plan to its length in days.
var PlanDurations = map[PlanType]int{
	PlanMonthly:   30,
	PlanQuarterly: 90,
	PlanYearly:    365,
}

type Subscription struct {
	ID              uint               `json:"id" gorm:"primaryKey"`
	UserID          uint               `json:"userId" gorm:"not null;index"`
	User            User               `json:"user" gorm:"foreignKey:UserID"`
	PlanType        PlanType           `json:"planType" gorm:"type:varchar(10);not null"`
	Amount          float64            `json:"amount" gorm:"not null"`
	PaymentMethod   string             `json:"paymentMethod" gorm:"not null"`
	ReferenceNumber string             `json:"referenceNumber" gorm:"not null"`
	Screenshot      string             `json:"screenshot"`
	Status          SubscriptionStatus `json:"status" gorm:"type:varchar(10);default:'PENDING'"`
	StartDate       *time.Time         `json:"startDate"`
	EndDate         *time.Time         `json:"endDate"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// SubscriptionCreate model for submitting a subscription for review
type SubscriptionCreate struct {
	PlanType        PlanType `json:"planType" binding:"required,oneof=MONTHLY QUARTERLY YEARLY"`
	Amount          float64  `json:"amount" binding:"required,gt=0"`
	PaymentMethod   string   `json:"paymentMethod" binding:"required"`
	ReferenceNumber string   `json:"referenceNumber" binding:"required"`
	Screenshot      string   `json:"screenshot"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
