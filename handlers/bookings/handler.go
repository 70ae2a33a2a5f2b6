package bookings

import (
	"errors"
	"net/http"
	"time"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// errRejected aborts a transaction after the handler already wrote the
// business-rule response.
var errRejected = errors.New("request rejected")

// @Summary Book a vehicle
// @Description Create a booking for a date range; rejected with 409 when the range overlaps an existing booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body models.BookingCreate true "Booking information, dates as YYYY-MM-DD"
// @Security BearerAuth
// @Success 201 {object} models.Booking
// @Failure 400 {object} map[string]string "error: Invalid dates"
// @Failure 403 {object} map[string]string "error: Cannot book own vehicle"
// @Failure 404 {object} map[string]string "error: Vehicle not found"
// @Failure 409 {object} map[string]string "error: Dates already booked"
// @Router /bookings [post]
func CreateBooking(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.BookingCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
		return
	}

	endDate, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
		return
	}

	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	if startDate.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start date must not be in the past"})
		return
	}

	var booking models.Booking

	// The vehicle row is locked for the whole check-then-insert, so two
	// simultaneous requests for the same dates cannot both pass the
	// overlap check.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&vehicle, input.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
				return errRejected
			}
			return err
		}

		if vehicle.Status != models.VehicleStatusApproved || !vehicle.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Vehicle is not available for booking"})
			return errRejected
		}

		if vehicle.OwnerID == userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot book your own vehicle"})
			return errRejected
		}

		// Inclusive overlap on date ranges: existing.start <= new.end AND
		// existing.end >= new.start.
		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("vehicle_id = ? AND start_date <= ? AND end_date >= ?",
				input.VehicleID, endDate, startDate).
			Count(&overlapping).Error; err != nil {
			return err
		}

		if overlapping > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is already booked for these dates"})
			return errRejected
		}

		// Both endpoints count: a one-day booking costs one day.
		days := int(endDate.Sub(startDate).Hours()/24) + 1

		booking = models.Booking{
			UserID:     userID,
			VehicleID:  input.VehicleID,
			StartDate:  startDate,
			EndDate:    endDate,
			TotalPrice: vehicle.PricePerDay * float64(days),
		}

		return tx.Create(&booking).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogErrorWithUser(userID, err, "Error creating booking")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating booking"})
		}
		return
	}

	utils.LogSuccessWithUser(userID, "Booking created")
	c.JSON(http.StatusCreated, booking)
}

// @Summary Get own bookings
// @Description List the authenticated user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Booking
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /bookings [get]
func GetMyBookings(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var bookings []models.Booking
	if err := db.DB.Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving bookings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary Get bookings taken on a vehicle
// @Description List bookings of one of the authenticated owner's vehicles
// @Tags bookings
// @Produce json
// @Param id path int true "Vehicle ID"
// @Security BearerAuth
// @Success 200 {array} models.Booking
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Vehicle not found"
// @Router /bookings/vehicle/{id} [get]
func GetVehicleBookings(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var vehicle models.Vehicle
	if err := db.DB.First(&vehicle, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving vehicle"})
		}
		return
	}

	if vehicle.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view bookings of your own vehicles"})
		return
	}

	var bookings []models.Booking
	if err := db.DB.Preload("User").
		Where("vehicle_id = ?", vehicle.ID).
		Order("start_date ASC").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving bookings: " + err.Error()})
		return
	}

	for i := range bookings {
		bookings[i].User.Password = ""
	}

	c.JSON(http.StatusOK, bookings)
}
