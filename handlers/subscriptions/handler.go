package subscriptions

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

type plan struct {
	PlanType models.PlanType `json:"planType"`
	Days     int             `json:"days"`
	Price    float64         `json:"price"`
}

var plans = []plan{
	{PlanType: models.PlanMonthly, Days: models.PlanDurations[models.PlanMonthly], Price: 500},
	{PlanType: models.PlanQuarterly, Days: models.PlanDurations[models.PlanQuarterly], Price: 1350},
	{PlanType: models.PlanYearly, Days: models.PlanDurations[models.PlanYearly], Price: 4800},
}

// @Summary List subscription plans
// @Description Available plans with duration and price
// @Tags subscriptions
// @Produce json
// @Success 200 {array} plan
// @Router /subscriptions/plans [get]
func GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, plans)
}

// @Summary Submit a subscription
// @Description Submit a subscription request for admin review; requires a verified account
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body models.SubscriptionCreate true "Subscription information"
// @Security BearerAuth
// @Success 201 {object} models.Subscription
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]interface{} "error: Verification required"
// @Failure 409 {object} map[string]string "error: Pending subscription exists"
// @Router /subscriptions/submit [post]
func Submit(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.SubscriptionCreate
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
			"error":                "Identity verification is required to subscribe",
			"requiresVerification": true,
		})
		return
	}

	var pending models.Subscription
	err := db.DB.Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusPending).
		First(&pending).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a subscription awaiting review"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking pending subscriptions"})
		return
	}

	subscription := models.Subscription{
		UserID:          userID,
		PlanType:        input.PlanType,
		Amount:          input.Amount,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNumber: input.ReferenceNumber,
		Screenshot:      input.Screenshot,
		Status:          models.SubscriptionStatusPending,
	}

	if err := db.DB.Create(&subscription).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error submitting subscription"})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription submitted")
	c.JSON(http.StatusCreated, subscription)
}

// @Summary Get own subscriptions
// @Description List the authenticated user's subscription requests
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /subscriptions [get]
func GetMySubscriptions(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var subscriptions []models.Subscription
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving subscriptions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// @Summary Get subscription state
// @Description Current subscriber flag and expiry of the authenticated user
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "isSubscriber and subscriptionExpiresAt"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /subscriptions/active [get]
func GetActive(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isSubscriber":          user.HasActiveSubscription(),
		"subscriptionExpiresAt": user.SubscriptionExpiresAt,
	})
}

// @Summary List subscriptions for review
// @Description Admin list of subscription requests, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /admin/subscriptions [get]
func AdminGetSubscriptions(c *gin.Context) {
	query := db.DB.Preload("User").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var subscriptions []models.Subscription
	if err := query.Find(&subscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving subscriptions: " + err.Error()})
		return
	}

	for i := range subscriptions {
		subscriptions[i].User.Password = ""
	}

	c.JSON(http.StatusOK, subscriptions)
}

// @Summary Approve a subscription
// @Description Approve a pending subscription, computing its period from the plan duration
// @Tags admin
// @Produce json
// @Param id path int true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} models.Subscription
// @Failure 400 {object} map[string]string "error: Subscription already processed"
// @Failure 404 {object} map[string]string "error: Subscription not found"
// @Router /admin/subscriptions/{id}/approve [post]
func Approve(c *gin.Context) {
	adminID := c.MustGet("user_id").(uint)

	var subscription models.Subscription

	// Status change and the subscriber flag update are one transaction; the
	// notification is written after commit, best effort.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&subscription, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
				return errRejected
			}
			return err
		}

		if subscription.Status != models.SubscriptionStatusPending {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Subscription already %s", subscription.Status),
			})
			return errRejected
		}

		days, ok := models.PlanDurations[subscription.PlanType]
		if !ok {
			return fmt.Errorf("unknown plan type %q", subscription.PlanType)
		}

		startDate := time.Now()
		endDate := startDate.AddDate(0, 0, days)

		if err := tx.Model(&subscription).Updates(map[string]interface{}{
			"status":     models.SubscriptionStatusApproved,
			"start_date": startDate,
			"end_date":   endDate,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", subscription.UserID).
			Updates(map[string]interface{}{
				"is_subscriber":           true,
				"subscription_expires_at": endDate,
			}).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogError(err, "Error approving subscription")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error approving subscription"})
		}
		return
	}

	utils.Notify(db.DB, subscription.UserID,
		fmt.Sprintf("Your %s subscription has been approved", subscription.PlanType))

	utils.LogSuccessWithUser(adminID, fmt.Sprintf("Subscription %d approved", subscription.ID))
	c.JSON(http.StatusOK, subscription)
}

// @Summary Reject a subscription
// @Description Reject a pending subscription request
// @Tags admin
// @Produce json
// @Param id path int true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} models.Subscription
// @Failure 400 {object} map[string]string "error: Subscription already processed"
// @Failure 404 {object} map[string]string "error: Subscription not found"
// @Router /admin/subscriptions/{id}/reject [post]
func Reject(c *gin.Context) {
	adminID := c.MustGet("user_id").(uint)

	var subscription models.Subscription

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&subscription, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
				return errRejected
			}
			return err
		}

		if subscription.Status != models.SubscriptionStatusPending {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Subscription already %s", subscription.Status),
			})
			return errRejected
		}

		return tx.Model(&subscription).Update("status", models.SubscriptionStatusRejected).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogError(err, "Error rejecting subscription")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error rejecting subscription"})
		}
		return
	}

	utils.Notify(db.DB, subscription.UserID,
		fmt.Sprintf("Your %s subscription has been rejected", subscription.PlanType))

	utils.LogSuccessWithUser(adminID, fmt.Sprintf("Subscription %d rejected", subscription.ID))
	c.JSON(http.StatusOK, subscription)
}
