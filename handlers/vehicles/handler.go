package vehicles

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"addiswheels-backend/config"
	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errRejected aborts a transaction after the handler already wrote the
// business-rule response.
var errRejected = errors.New("request rejected")

const (
	defaultPageSize = 12
	maxPageSize     = 50
	minImages       = 2
	maxImages       = 4
)

// applyFilters adds the public listing filters shared by the list and count
// endpoints.
func applyFilters(c *gin.Context, query *gorm.DB) *gorm.DB {
	if vehicleType := c.Query("type"); vehicleType != "" {
		query = query.Where("type = ?", vehicleType)
	}
	if brand := c.Query("brand"); brand != "" {
		query = query.Where("brand ILIKE ?", brand)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("brand ILIKE ? OR model ILIKE ?", pattern, pattern)
	}
	if featured := c.Query("featured"); featured != "" {
		query = query.Where("featured = ?", featured == "true")
	}
	return query
}

// @Summary Browse vehicles
// @Description List approved and available vehicles with cursor pagination
// @Tags vehicles
// @Produce json
// @Param type query string false "Vehicle type (CAR or MOTORBIKE)"
// @Param brand query string false "Exact brand filter"
// @Param search query string false "Search in brand and model"
// @Param featured query boolean false "Only featured vehicles"
// @Param cursor query int false "Last seen vehicle id"
// @Param limit query int false "Page size (default 12, max 50)"
// @Success 200 {object} map[string]interface{} "vehicles and nextCursor"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /vehicles [get]
func GetAllVehicles(c *gin.Context) {
	limit := defaultPageSize
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
		if limit > maxPageSize {
			limit = maxPageSize
		}
	}

	query := db.DB.Preload("Owner").
		Where("status = ? AND available = ?", models.VehicleStatusApproved, true)
	query = applyFilters(c, query)

	// Cursor pagination: the cursor is the last seen id, pages walk id
	// descending so newly inserted rows never shift an open page.
	if rawCursor := c.Query("cursor"); rawCursor != "" {
		cursor, err := strconv.ParseUint(rawCursor, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor"})
			return
		}
		query = query.Where("id < ?", cursor)
	}

	var vehicles []models.Vehicle
	if err := query.Order("id DESC").Limit(limit + 1).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving vehicles: " + err.Error()})
		return
	}

	var nextCursor *uint
	if len(vehicles) > limit {
		vehicles = vehicles[:limit]
		nextCursor = &vehicles[len(vehicles)-1].ID
	}

	for i := range vehicles {
		vehicles[i].Owner.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles":   vehicles,
		"nextCursor": nextCursor,
	})
}

// @Summary Count vehicles
// @Description Total number of approved vehicles matching the listing filters
// @Tags vehicles
// @Produce json
// @Param type query string false "Vehicle type (CAR or MOTORBIKE)"
// @Param brand query string false "Exact brand filter"
// @Param search query string false "Search in brand and model"
// @Param featured query boolean false "Only featured vehicles"
// @Success 200 {object} map[string]int64 "count"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /vehicles/count [get]
func CountVehicles(c *gin.Context) {
	query := db.DB.Model(&models.Vehicle{}).
		Where("status = ? AND available = ?", models.VehicleStatusApproved, true)
	query = applyFilters(c, query)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// @Summary Get a vehicle by ID
// @Description Retrieve one approved vehicle listing
// @Tags vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} map[string]string "error: Vehicle not found"
// @Router /vehicles/{id} [get]
func GetVehicleByID(c *gin.Context) {
	var vehicle models.Vehicle
	err := db.DB.Preload("Owner").
		Where("id = ? AND status = ?", c.Param("id"), models.VehicleStatusApproved).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving vehicle: " + err.Error()})
		}
		return
	}

	vehicle.Owner.Password = ""
	c.JSON(http.StatusOK, vehicle)
}

// @Summary Create a vehicle listing
// @Description Create a new listing, pending admin approval. Requires a verified account and a free listing slot.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body models.VehicleCreate true "Vehicle information"
// @Security BearerAuth
// @Success 201 {object} models.Vehicle
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]interface{} "requiresVerification or requiresPayment"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /vehicles [post]
func CreateVehicle(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.VehicleCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if len(input.Images) < minImages || len(input.Images) > maxImages {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Between %d and %d images are required", minImages, maxImages),
		})
		return
	}

	if !utils.ValidateImageURLs(input.Images) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Images must be valid http(s) URLs"})
		return
	}

	var vehicle models.Vehicle

	// The quota check and the insert run in one transaction with the owner
	// row locked, so two simultaneous creations cannot both pass the check.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			return err
		}

		if !user.IsVerified {
			c.JSON(http.StatusForbidden, gin.H{
				"error":                "Identity verification is required to list a vehicle",
				"requiresVerification": true,
			})
			return errRejected
		}

		if !user.HasActiveSubscription() {
			var current int64
			if err := tx.Model(&models.Vehicle{}).
				Where("owner_id = ?", userID).
				Count(&current).Error; err != nil {
				return err
			}

			allowed := int64(config.Cfg.FreeListings + user.ExtraListings)
			if current >= allowed {
				c.JSON(http.StatusForbidden, gin.H{
					"error":           "Listing limit reached, payment or subscription required",
					"requiresPayment": true,
					"current":         current,
					"allowed":         allowed,
				})
				return errRejected
			}
		}

		vehicle = models.Vehicle{
			Type:        input.Type,
			Brand:       input.Brand,
			ModelName:   input.Model,
			Year:        input.Year,
			PricePerDay: input.PricePerDay,
			Images:      pq.StringArray(input.Images),
			Status:      models.VehicleStatusPending,
			Available:   true,
			OwnerID:     userID,
		}

		return tx.Create(&vehicle).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogErrorWithUser(userID, err, "Error creating vehicle")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating vehicle"})
		}
		return
	}

	utils.LogSuccessWithUser(userID, "Vehicle created")
	c.JSON(http.StatusCreated, vehicle)
}

// @Summary Get own vehicles
// @Description List the authenticated owner's vehicles, any status
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Vehicle
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /vehicles/mine [get]
func GetMyVehicles(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var vehicles []models.Vehicle
	if err := db.DB.Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// @Summary Update a vehicle
// @Description Owner edit of a listing; the edited listing goes back to pending review
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param vehicle body models.VehicleUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]interface{} "error: Not the owner or verification required"
// @Failure 404 {object} map[string]string "error: Vehicle not found"
// @Router /vehicles/{id} [patch]
func UpdateVehicle(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.VehicleUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{
			"error":                "Identity verification is required to edit a vehicle",
			"requiresVerification": true,
		})
		return
	}

	var vehicle models.Vehicle
	if err := db.DB.First(&vehicle, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if vehicle.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own vehicles"})
		return
	}

	updates := map[string]interface{}{}
	if input.Brand != "" {
		updates["brand"] = input.Brand
	}
	if input.Model != "" {
		updates["model"] = input.Model
	}
	if input.Year != 0 {
		updates["year"] = input.Year
	}
	if input.PricePerDay != 0 {
		if input.PricePerDay < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price per day must be positive"})
			return
		}
		updates["price_per_day"] = input.PricePerDay
	}
	if input.Images != nil {
		if len(input.Images) < minImages || len(input.Images) > maxImages {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Between %d and %d images are required", minImages, maxImages),
			})
			return
		}
		if !utils.ValidateImageURLs(input.Images) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Images must be valid http(s) URLs"})
			return
		}
		updates["images"] = pq.StringArray(input.Images)
	}
	if input.Available != nil {
		updates["available"] = *input.Available
	}

	// Edited listings need a fresh review.
	updates["status"] = models.VehicleStatusPending

	if err := db.DB.Model(&vehicle).Updates(updates).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating vehicle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating vehicle"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// @Summary Delete a vehicle
// @Description Delete a listing; allowed for the owner or an admin
// @Tags vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Vehicle deleted"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Vehicle not found"
// @Router /vehicles/{id} [delete]
func DeleteVehicle(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	role := c.MustGet("role")

	var vehicle models.Vehicle
	if err := db.DB.First(&vehicle, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if vehicle.OwnerID != userID && role != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own vehicles"})
		return
	}

	if err := db.DB.Delete(&vehicle).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting vehicle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
