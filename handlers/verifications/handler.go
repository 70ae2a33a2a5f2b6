package verifications

import (
	"errors"
	"net/http"

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

// VerificationCreate model for submitting an identity document
type VerificationCreate struct {
	DocumentType string `json:"documentType" binding:"required"`
	DocumentURL  string `json:"documentUrl" binding:"required,url"`
}

// @Summary Submit identity verification
// @Description Submit an identity document for admin review
// @Tags verifications
// @Accept json
// @Produce json
// @Param verification body VerificationCreate true "Document type and URL"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Verification submitted"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Already pending or approved"
// @Router /verifications/submit [post]
func Submit(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input VerificationCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	if user.VerificationStatus == models.VerificationPending {
		c.JSON(http.StatusConflict, gin.H{"error": "A verification request is already pending"})
		return
	}
	if user.VerificationStatus == models.VerificationApproved {
		c.JSON(http.StatusConflict, gin.H{"error": "Your account is already verified"})
		return
	}

	if err := db.DB.Model(&user).Updates(map[string]interface{}{
		"verification_status":   models.VerificationPending,
		"verification_document": input.DocumentURL,
		"document_type":         input.DocumentType,
	}).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error submitting verification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error submitting verification"})
		return
	}

	utils.LogSuccessWithUser(userID, "Verification submitted")
	c.JSON(http.StatusOK, gin.H{"message": "Verification submitted"})
}

// @Summary Get verification status
// @Description Current verification state of the authenticated user
// @Tags verifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "isVerified and verificationStatus"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /verifications/status [get]
func GetStatus(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isVerified":         user.IsVerified,
		"verificationStatus": user.VerificationStatus,
		"documentType":       user.DocumentType,
	})
}

// @Summary List pending verifications
// @Description Admin list of users awaiting identity verification
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /admin/verifications [get]
func AdminGetPending(c *gin.Context) {
	var users []models.User
	if err := db.DB.Where("verification_status = ?", models.VerificationPending).
		Order("updated_at ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving verifications: " + err.Error()})
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	c.JSON(http.StatusOK, users)
}

func decide(c *gin.Context, approve bool) {
	var user models.User

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return errRejected
			}
			return err
		}

		if user.VerificationStatus != models.VerificationPending {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No pending verification for this user"})
			return errRejected
		}

		updates := map[string]interface{}{
			"is_verified":         approve,
			"verification_status": models.VerificationRejected,
		}
		if approve {
			updates["verification_status"] = models.VerificationApproved
		}

		return tx.Model(&user).Updates(updates).Error
	})

	if err != nil {
		if !errors.Is(err, errRejected) {
			utils.LogError(err, "Error processing verification")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing verification"})
		}
		return
	}

	if approve {
		utils.Notify(db.DB, user.ID, "Your identity verification has been approved")
	} else {
		utils.Notify(db.DB, user.ID, "Your identity verification has been rejected")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification processed"})
}

// @Summary Approve a verification
// @Description Mark a user's pending identity document as approved
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Verification processed"
// @Failure 400 {object} map[string]string "error: No pending verification"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /admin/verifications/{id}/approve [post]
func Approve(c *gin.Context) {
	decide(c, true)
}

// @Summary Reject a verification
// @Description Mark a user's pending identity document as rejected
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Verification processed"
// @Failure 400 {object} map[string]string "error: No pending verification"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /admin/verifications/{id}/reject [post]
func Reject(c *gin.Context) {
	decide(c, false)
}
