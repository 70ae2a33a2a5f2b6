package auth

import (
	"errors"
	"net/http"
	"strings"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenValidityHours is the bearer token lifetime (7 days).
const tokenValidityHours = 168

// @Summary Register a new user
// @Description Create a new account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "User information"
// @Success 201 {object} map[string]interface{} "token and user"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Email already exists"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /register [post]
func Register(c *gin.Context) {
	var input models.UserCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	hasLower := strings.ContainsAny(input.Password, "abcdefghijklmnopqrstuvwxyz")
	hasUpper := strings.ContainsAny(input.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	hasDigit := strings.ContainsAny(input.Password, "0123456789")

	if !hasLower || !hasUpper || !hasDigit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The password must contain at least one lowercase, one uppercase and one digit",
		})
		return
	}

	var existingUser models.User
	if err := db.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "This email is already used",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error when checking the email existence")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error when checking the email existence",
		})
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: passwordHash,
		Phone:    input.Phone,
		Whatsapp: input.Whatsapp,
		Role:     models.UserRole,
	}

	if result := db.DB.Create(&user); result.Error != nil {
		utils.LogError(result.Error, "Error creating user")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating user",
		})
		return
	}

	token, err := utils.GenerateJWT(user, tokenValidityHours)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error generating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User registered")

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// @Summary User login
// @Description Authenticate with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} map[string]interface{} "token and user"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Wrong credentials"
// @Failure 403 {object} map[string]interface{} "error: Account blocked"
// @Failure 422 {object} map[string]interface{} "error: JWT not generated"
// @Router /login [post]
func Login(c *gin.Context) {
	var input models.UserLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	var user models.User
	result := db.DB.Where("email = ?", input.Email).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Wrong credentials",
			})
		} else {
			utils.LogError(result.Error, "Error fetching user at login")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Database error",
			})
		}
		return
	}

	if !samePassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Wrong credentials",
		})
		return
	}

	if user.Blocked {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Your account has been blocked",
		})
		return
	}

	token, err := utils.GenerateJWT(user, tokenValidityHours)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error generating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in")

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func samePassword(formPassword string, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(formPassword))
	return err == nil
}
