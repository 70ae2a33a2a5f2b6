package savedvehicles

import (
	"net/http"

	"addiswheels-backend/db"
	"addiswheels-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Toggle a saved vehicle
// @Description Add or remove a vehicle from the authenticated user's favorites
// @Tags saved-vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "saved: new state"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Vehicle not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /vehicles/{id}/save [post]
func ToggleSave(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	vehicleID := c.Param("id")

	var vehicle models.Vehicle
	if err := db.DB.First(&vehicle, vehicleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var saved models.SavedVehicle
	result := db.DB.Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).First(&saved)

	if result.Error == nil {
		// Already saved, remove the favorite
		if err := db.DB.Delete(&saved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing saved vehicle: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Vehicle removed from favorites", "saved": false})
		return
	}

	saved = models.SavedVehicle{
		UserID:    userID,
		VehicleID: vehicle.ID,
	}

	if err := db.DB.Create(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle added to favorites", "saved": true})
}

// @Summary Get saved vehicles
// @Description List the authenticated user's favorite vehicles
// @Tags saved-vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SavedVehicle
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /saved-vehicles [get]
func GetSavedVehicles(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var saved []models.SavedVehicle
	if err := db.DB.Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving saved vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}
