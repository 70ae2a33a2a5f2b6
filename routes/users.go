package routes

import (
	"addiswheels-backend/handlers/users"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	usersGroup := r.Group("/users")
	usersGroup.Use(middleware.JWTAuth())
	{
		usersGroup.GET("/me", users.GetMe)
		usersGroup.PUT("/me", users.UpdateMe)
	}

	adminGroup := r.Group("/admin/users")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", users.GetAllUsers)
		adminGroup.PATCH("/:id/block", users.ToggleBlock)
		adminGroup.PATCH("/:id/role", users.UpdateRole)
	}
}
