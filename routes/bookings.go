package routes

import (
	"addiswheels-backend/handlers/bookings"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func BookingsRoutes(r *gin.Engine) {
	bookingsGroup := r.Group("/bookings")
	bookingsGroup.Use(middleware.JWTAuth())
	{
		bookingsGroup.POST("", bookings.CreateBooking)
		bookingsGroup.GET("", bookings.GetMyBookings)
		bookingsGroup.GET("/vehicle/:id", bookings.GetVehicleBookings)
	}
}
