package models

import (
	"time"
)

// Booking is immutable once created: no status column, no update endpoint.
type Booking struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;index"`
	User       User      `json:"user" gorm:"foreignKey:UserID"`
	VehicleID  uint      `json:"vehicleId" gorm:"not null;index"`
	Vehicle    Vehicle   `json:"vehicle" gorm:"foreignKey:VehicleID"`
	StartDate  time.Time `json:"startDate" gorm:"type:date;not null"`
	EndDate    time.Time `json:"endDate" gorm:"type:date;not null"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingCreate model for creating a booking, dates as YYYY-MM-DD
type BookingCreate struct {
	VehicleID uint   `json:"vehicleId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func (Booking) TableName() string {
	return "bookings"
}
