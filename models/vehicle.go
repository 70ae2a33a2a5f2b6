package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type VehicleType string

const (
	VehicleCar       VehicleType = "CAR"
	VehicleMotorbike VehicleType = "MOTORBIKE"
)

type VehicleStatus string

const (
	VehicleStatusPending  VehicleStatus = "PENDING"
	VehicleStatusApproved VehicleStatus = "APPROVED"
	VehicleStatusRejected VehicleStatus = "REJECTED"
)

type Vehicle struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Type        VehicleType    `json:"type" gorm:"type:varchar(10);not null"`
	Brand       string         `json:"brand" gorm:"not null"`
	ModelName   string         `json:"model" gorm:"column:model;not null"`
	Year        int            `json:"year"`
	PricePerDay float64        `json:"pricePerDay" gorm:"not null"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Status      VehicleStatus  `json:"status" gorm:"type:varchar(10);default:'PENDING'"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	Available   bool           `json:"available" gorm:"default:true"`
	OwnerID     uint           `json:"ownerId" gorm:"not null;index"`
	Owner       User           `json:"owner" gorm:"foreignKey:OwnerID"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// VehicleCreate model for creating a vehicle listing
type VehicleCreate struct {
	Type        VehicleType `json:"type" binding:"required,oneof=CAR MOTORBIKE"`
	Brand       string      `json:"brand" binding:"required"`
	Model       string      `json:"model" binding:"required"`
	Year        int         `json:"year" binding:"required"`
	PricePerDay float64     `json:"pricePerDay" binding:"required,gt=0"`
	Images      []string    `json:"images" binding:"required"`
}

// VehicleUpdate model for owner edits
type VehicleUpdate struct {
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	PricePerDay float64  `json:"pricePerDay"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
}

// VehicleAdminUpdate model for the admin status/featured endpoint
type VehicleAdminUpdate struct {
	Status   VehicleStatus `json:"status" binding:"omitempty,oneof=APPROVED REJECTED"`
	Featured *bool         `json:"featured"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
