package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

type User struct {
	gorm.Model
	Name                  string             `json:"name"`
	Email                 string             `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password              string             `json:"password,omitempty" binding:"required,min=6"`
	Role                  Role               `json:"role" gorm:"type:varchar(10);default:'USER'"`
	Blocked               bool               `json:"blocked" gorm:"default:false"`
	Phone                 string             `json:"phone"`
	Whatsapp              string             `json:"whatsapp"`
	IsVerified            bool               `json:"isVerified" gorm:"default:false"`
	VerificationStatus    VerificationStatus `json:"verificationStatus" gorm:"type:varchar(10)"`
	VerificationDocument  string             `json:"verificationDocument"`
	DocumentType          string             `json:"documentType"`
	ExtraListings         int                `json:"extraListings" gorm:"default:0"`
	IsSubscriber          bool               `json:"isSubscriber" gorm:"default:false"`
	SubscriptionExpiresAt *time.Time         `json:"subscriptionExpiresAt"`
}

// UserCreate model for the register endpoint
type UserCreate struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
}

// UserLogin model for the login endpoint
type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserUpdate model for profile edits
type UserUpdate struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
}

// HasActiveSubscription reports whether the subscriber flag is still in effect.
func (u *User) HasActiveSubscription() bool {
	if !u.IsSubscriber {
		return false
	}
	if u.SubscriptionExpiresAt == nil {
		return false
	}
	return u.SubscriptionExpiresAt.After(time.Now())
}
