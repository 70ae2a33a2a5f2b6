package middleware

import (
	"errors"
	"net/http"
	"strings"

	"addiswheels-backend/db"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"gorm.io/gorm"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, false
	}

	tokenString := parts[1]
	tokenString = strings.Trim(tokenString, "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

// setIdentity copies the token claims into the gin context and rejects
// tokens whose account has been blocked since the token was issued.
// Numeric claims arrive as float64 after JSON decoding.
func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	rawID, exists := claims["user_id"]
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User id not found in token"})
		c.Abort()
		return false
	}

	idFloat, ok := rawID.(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id in token"})
		c.Abort()
		return false
	}

	userID := uint(idFloat)

	var user models.User
	if err := db.DB.Select("blocked").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
		} else {
			utils.LogError(err, "Error verifying account state")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verifying account"})
		}
		c.Abort()
		return false
	}

	if user.Blocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account has been blocked"})
		c.Abort()
		return false
	}

	c.Set("user_id", userID)
	c.Set("email", claims["email"])
	c.Set("role", claims["role"])
	return true
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		if !setIdentity(c, claims) {
			return
		}

		c.Next()
	}
}

func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		if !setIdentity(c, claims) {
			return
		}

		role, exists := claims["role"]
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		if role != "ADMIN" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
