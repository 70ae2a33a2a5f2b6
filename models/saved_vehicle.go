package models

import (
	"time"
)

// SavedVehicle is a favorite join row, unique per (user, vehicle).
type SavedVehicle struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_saved_user_vehicle"`
	VehicleID uint      `json:"vehicleId" gorm:"not null;uniqueIndex:idx_saved_user_vehicle"`
	Vehicle   Vehicle   `json:"vehicle" gorm:"foreignKey:VehicleID"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SavedVehicle) TableName() string {
	return "saved_vehicles"
}
