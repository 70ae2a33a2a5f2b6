package notifications

import (
	"errors"
	"net/http"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get notifications
// @Description List the authenticated user's notifications, unread first then newest first; polled by the client
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Notification
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /notifications [get]
func GetNotifications(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", userID).
		Order("read ASC, created_at DESC").
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving notifications: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// @Summary Get unread notification count
// @Description Number of unread notifications, polled for the badge
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64 "count"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /notifications/unread-count [get]
func GetUnreadCount(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var count int64
	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting notifications: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// @Summary Mark a notification as read
// @Description Mark one of the authenticated user's notifications as read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Notification marked as read"
// @Failure 404 {object} map[string]string "error: Notification not found"
// @Router /notifications/{id}/read [patch]
func MarkRead(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var notification models.Notification
	err := db.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving notification"})
		}
		return
	}

	if err := db.DB.Model(&notification).Update("read", true).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error marking notification as read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// @Summary Mark all notifications as read
// @Description Mark every unread notification of the authenticated user as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64 "markedCount"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /notifications/read-all [post]
func MarkAllRead(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	result := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error marking notifications as read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"markedCount": result.RowsAffected})
}
