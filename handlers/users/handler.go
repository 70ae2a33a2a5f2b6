package users

import (
	"errors"
	"net/http"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get own profile
// @Description Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetMe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		}
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// @Summary Update own profile
// @Description Update name and contact details of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /users/me [put]
func UpdateMe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Whatsapp != "" {
		updates["whatsapp"] = input.Whatsapp
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error updating profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
			return
		}
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// @Summary List all users
// @Description Admin list of every registered user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /admin/users [get]
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users"})
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Block or unblock a user
// @Description Toggle the blocked flag of a user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "blocked: new state"
// @Failure 400 {object} map[string]string "error: Cannot block yourself"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /admin/users/{id}/block [patch]
func ToggleBlock(c *gin.Context) {
	adminID := c.MustGet("user_id").(uint)

	var user models.User
	if err := db.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.ID == adminID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot block your own account"})
		return
	}

	if err := db.DB.Model(&user).Update("blocked", !user.Blocked).Error; err != nil {
		utils.LogError(err, "Error updating blocked flag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated",
		"blocked": !user.Blocked,
	})
}

type roleUpdate struct {
	Role models.Role `json:"role" binding:"required,oneof=USER ADMIN"`
}

// @Summary Change a user's role
// @Description Set a user's role to USER or ADMIN
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param role body roleUpdate true "New role"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Role updated"
// @Failure 400 {object} map[string]string "error: Invalid role"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /admin/users/{id}/role [patch]
func UpdateRole(c *gin.Context) {
	var input roleUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := db.DB.Model(&user).Update("role", input.Role).Error; err != nil {
		utils.LogError(err, "Error updating role")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
