package utils

import (
	"addiswheels-backend/models"

	"gorm.io/gorm"
)

// Notify inserts an in-app notification for a user. Delivery is best effort:
// a failed insert is logged and never propagated, so an admin decision is not
// rolled back because its notification could not be written.
func Notify(dbConn *gorm.DB, userID uint, message string) {
	notification := models.Notification{
		UserID:  userID,
		Message: message,
	}

	if err := dbConn.Create(&notification).Error; err != nil {
		LogErrorWithUser(userID, err, "Error creating notification")
	}
}
