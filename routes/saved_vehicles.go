package routes

import (
	"addiswheels-backend/handlers/savedvehicles"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SavedVehiclesRoutes(r *gin.Engine) {
	savedGroup := r.Group("/saved-vehicles")
	savedGroup.Use(middleware.JWTAuth())
	{
		savedGroup.GET("", savedvehicles.GetSavedVehicles)
	}
}
