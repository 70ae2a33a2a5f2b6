package payments

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errRejected aborts a transaction after the handler already wrote the
// business-rule response.
var errRejected = errors.New("request rejected")

// @Summary Submit a payment
// @Description Submit a listing-slot payment for admin review
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.PaymentCreate true "Payment information"
// @Security BearerAuth
// @Success 201 {object} models.Payment
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /payments/submit [post]
func Submit(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.PaymentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	payment := models.Payment{
		UserID:          userID,
		Amount:          input.Amount,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNumber: input.ReferenceNumber,
		Screenshot:      input.Screenshot,
		Status:          models.PaymentStatusPending,
	}

	if err := db.DB.Create(&payment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating payment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error submitting payment"})
		return
	}

	utils.LogSuccessWithUser(userID, "Payment submitted")
	c.JSON(http.StatusCreated, payment)
}

// @Summary Get own payments
// @Description List the authenticated user's submitted payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Payment
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /payments [get]
func GetMyPayments(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var payments []models.Payment
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving payments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary List payments for review
// @Description Admin list of submitted payments, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Security BearerAuth
// @Success 200 {array} models.Payment
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /admin/payments [get]
func AdminGetPayments(c *gin.Context) {
	query := db.DB.Preload("User").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving payments: " + err.Error()})
		return
	}

	for i := range payments {
		payments[i].User.Password = ""
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary Approve a payment
// @Description Approve a pending payment and grant the user one extra listing slot
// @Tags admin
// @Produce json
// @Param id path int true "Payment ID"
// @Security BearerAuth
// @Success 200 {object} models.Payment
// @Failure 400 {object} map[string]string "error: Payment already processed"
// @Failure 404 {object} map[string]string "error: Payment not found"
// @Router /admin/payments/{id}/approve [post]
func Approve(c *gin.Context) {
	adminID := c.MustGet("user_id").(uint)

	var payment models.Payment

	// Status change and the extra-listing grant are one transaction; the
	// notification is written after commit, best effort.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
				return errRejected
			}
			return err
		}

		if payment.Status != models.PaymentStatusPending {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Payment already %s", payment.Status),
			})
			return errRejected
		}

		now := time.Now()
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":      models.PaymentStatusApproved,
			"approved_at": now,
			"approved_by": adminID,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", payment.UserID).
			UpdateColumn("extra_listings", gorm.Expr("extra_listings + ?", 1)).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogError(err, "Error approving payment")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error approving payment"})
		}
		return
	}

	utils.Notify(db.DB, payment.UserID,
		"Your payment has been approved, one extra listing slot was added to your account")

	utils.LogSuccessWithUser(adminID, fmt.Sprintf("Payment %d approved", payment.ID))
	c.JSON(http.StatusOK, payment)
}

// @Summary Reject a payment
// @Description Reject a pending payment
// @Tags admin
// @Produce json
// @Param id path int true "Payment ID"
// @Security BearerAuth
// @Success 200 {object} models.Payment
// @Failure 400 {object} map[string]string "error: Payment already processed"
// @Failure 404 {object} map[string]string "error: Payment not found"
// @Router /admin/payments/{id}/reject [post]
func Reject(c *gin.Context) {
	adminID := c.MustGet("user_id").(uint)

	var payment models.Payment

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
				return errRejected
			}
			return err
		}

		if payment.Status != models.PaymentStatusPending {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Payment already %s", payment.Status),
			})
			return errRejected
		}

		return tx.Model(&payment).Update("status", models.PaymentStatusRejected).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogError(err, "Error rejecting payment")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error rejecting payment"})
		}
		return
	}

	utils.Notify(db.DB, payment.UserID, "Your payment has been rejected")

	utils.LogSuccessWithUser(adminID, fmt.Sprintf("Payment %d rejected", payment.ID))
	c.JSON(http.StatusOK, payment)
}
