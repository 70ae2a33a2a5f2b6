package messages

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Send a message
// @Description Send a chat message to another user about a vehicle listing
// @Tags messages
// @Accept json
// @Produce json
// @Param message body models.MessageCreate true "Message information"
// @Security BearerAuth
// @Success 201 {object} models.Message
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 404 {object} map[string]string "error: Receiver or vehicle not found"
// @Failure 500 {object} map[string]string "error: Error creating message"
// @Router /messages [post]
func CreateMessage(c *gin.Context) {
	senderID := c.MustGet("user_id").(uint)

	var input models.MessageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	if input.ReceiverID == senderID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot message yourself"})
		return
	}

	var receiver models.User
	if result := db.DB.First(&receiver, input.ReceiverID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verifying receiver: " + result.Error.Error()})
		}
		return
	}

	var vehicle models.Vehicle
	if result := db.DB.First(&vehicle, input.VehicleID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verifying vehicle: " + result.Error.Error()})
		}
		return
	}

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		VehicleID:  input.VehicleID,
		Content:    input.Content,
	}

	if result := db.DB.Create(&message); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating message: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// Conversation is a derived thread: one (vehicle, other user) pair with its
// latest message and unread count. There is no conversation table.
type Conversation struct {
	VehicleID     uint           `json:"vehicleId"`
	OtherUserID   uint           `json:"otherUserId"`
	OtherUserName string         `json:"otherUserName"`
	VehicleName   string         `json:"vehicleName"`
	LastMessage   models.Message `json:"lastMessage"`
	UnreadCount   int            `json:"unreadCount"`
}

// @Summary List conversations
// @Description Threads of the authenticated user, grouped by vehicle and correspondent, latest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Conversation
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving messages"
// @Router /messages/conversations [get]
func GetConversations(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var messages []models.Message
	result := db.DB.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving messages: " + result.Error.Error()})
		return
	}

	type key struct {
		vehicleID uint
		otherID   uint
	}

	conversations := []Conversation{}
	index := map[key]int{}

	// Messages arrive newest first, so the first message of a pair is the
	// thread preview.
	for _, msg := range messages {
		otherID := msg.SenderID
		if msg.SenderID == userID {
			otherID = msg.ReceiverID
		}

		k := key{vehicleID: msg.VehicleID, otherID: otherID}
		pos, seen := index[k]
		if !seen {
			// A missing row leaves the preview name blank (deleted account
			// or listing); any other error aborts the listing.
			var other models.User
			if err := db.DB.Select("name").First(&other, otherID).Error; err != nil &&
				!errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving conversations: " + err.Error()})
				return
			}

			var vehicle models.Vehicle
			if err := db.DB.Select("brand, model").First(&vehicle, msg.VehicleID).Error; err != nil &&
				!errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving conversations: " + err.Error()})
				return
			}

			conversations = append(conversations, Conversation{
				VehicleID:     msg.VehicleID,
				OtherUserID:   otherID,
				OtherUserName: other.Name,
				VehicleName:   vehicle.Brand + " " + vehicle.ModelName,
				LastMessage:   msg,
			})
			pos = len(conversations) - 1
			index[k] = pos
		}

		if msg.ReceiverID == userID && msg.ReadAt == nil {
			conversations[pos].UnreadCount++
		}
	}

	c.JSON(http.StatusOK, conversations)
}

// @Summary Get a conversation thread
// @Description All messages between the authenticated user and another user about one vehicle, oldest first
// @Tags messages
// @Produce json
// @Param vehicleId query int true "Vehicle ID"
// @Param userId query int true "Other user ID"
// @Security BearerAuth
// @Success 200 {array} models.Message
// @Failure 400 {object} map[string]string "error: Invalid parameters"
// @Failure 500 {object} map[string]string "error: Error retrieving messages"
// @Router /messages/thread [get]
func GetThread(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	vehicleID, err := strconv.ParseUint(c.Query("vehicleId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicleId"})
		return
	}

	otherID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	var messages []models.Message
	result := db.DB.Where(
		"vehicle_id = ? AND ((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?))",
		vehicleID, userID, otherID, otherID, userID).
		Order("created_at ASC").
		Find(&messages)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving messages: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// @Summary Mark a thread as read
// @Description Mark the unread messages of one conversation side as read; re-invoking is a no-op
// @Tags messages
// @Accept json
// @Produce json
// @Param input body models.MarkReadInput true "Vehicle and sender identifying the thread"
// @Security BearerAuth
// @Success 200 {object} map[string]int64 "markedCount"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error marking messages"
// @Router /messages/mark-read [post]
func MarkRead(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.MarkReadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result := db.DB.Model(&models.Message{}).
		Where("vehicle_id = ? AND sender_id = ? AND receiver_id = ? AND read_at IS NULL",
			input.VehicleID, input.SenderID, userID).
		Update("read_at", time.Now())
	if result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error marking messages as read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error marking messages as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"markedCount": result.RowsAffected})
}

// @Summary Get unread message count
// @Description Total unread messages of the authenticated user, polled for the badge
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64 "count"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /messages/unread-count [get]
func GetUnreadCount(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var count int64
	if err := db.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND read_at IS NULL", userID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting messages: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
