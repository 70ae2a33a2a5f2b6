package vehicles

import (
	"errors"
	"fmt"
	"net/http"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// @Summary List vehicles for review
// @Description Admin list of vehicles, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Security BearerAuth
// @Success 200 {array} models.Vehicle
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /admin/vehicles [get]
func AdminGetVehicles(c *gin.Context) {
	query := db.DB.Preload("Owner").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving vehicles: " + err.Error()})
		return
	}

	for i := range vehicles {
		vehicles[i].Owner.Password = ""
	}

	c.JSON(http.StatusOK, vehicles)
}

// @Summary Review a vehicle listing
// @Description Approve or reject a pending listing and/or toggle its featured flag
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param update body models.VehicleAdminUpdate true "Status and/or featured"
// @Security BearerAuth
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} map[string]string "error: Vehicle already processed"
// @Failure 404 {object} map[string]string "error: Vehicle not found"
// @Router /admin/vehicles/{id} [put]
func AdminUpdateVehicle(c *gin.Context) {
	var input models.VehicleAdminUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Status == "" && input.Featured == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	var vehicle models.Vehicle

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&vehicle, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
				return errRejected
			}
			return err
		}

		updates := map[string]interface{}{}

		if input.Status != "" {
			// Status moves out of PENDING exactly once.
			if vehicle.Status != models.VehicleStatusPending {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("Vehicle already %s", vehicle.Status),
				})
				return errRejected
			}
			updates["status"] = input.Status
		}

		if input.Featured != nil {
			updates["featured"] = *input.Featured
		}

		return tx.Model(&vehicle).Updates(updates).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogError(err, "Error updating vehicle status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating vehicle"})
		}
		return
	}

	if input.Status == models.VehicleStatusApproved {
		utils.Notify(db.DB, vehicle.OwnerID,
			fmt.Sprintf("Your %s %s listing has been approved", vehicle.Brand, vehicle.ModelName))
	} else if input.Status == models.VehicleStatusRejected {
		utils.Notify(db.DB, vehicle.OwnerID,
			fmt.Sprintf("Your %s %s listing has been rejected", vehicle.Brand, vehicle.ModelName))
	}

	c.JSON(http.StatusOK, vehicle)
}
