package routes

import (
	"addiswheels-backend/handlers/savedvehicles"
	"addiswheels-backend/handlers/vehicles"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func VehiclesRoutes(r *gin.Engine) {
	// Public browsing
	r.GET("/vehicles", vehicles.GetAllVehicles)
	r.GET("/vehicles/count", vehicles.CountVehicles)
	r.GET("/vehicles/:id", vehicles.GetVehicleByID)

	vehiclesGroup := r.Group("/vehicles")
	vehiclesGroup.Use(middleware.JWTAuth())
	{
		vehiclesGroup.POST("", vehicles.CreateVehicle)
		vehiclesGroup.GET("/mine", vehicles.GetMyVehicles)
		vehiclesGroup.PATCH("/:id", vehicles.UpdateVehicle)
		vehiclesGroup.DELETE("/:id", vehicles.DeleteVehicle)
		vehiclesGroup.POST("/:id/save", savedvehicles.ToggleSave)
	}

	adminGroup := r.Group("/admin/vehicles")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", vehicles.AdminGetVehicles)
		adminGroup.PUT("/:id", vehicles.AdminUpdateVehicle)
	}
}
