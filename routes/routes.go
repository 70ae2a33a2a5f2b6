package routes

import (
	"time"

	"addiswheels-backend/handlers/ping"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pingHandler := ping.New()
	r.GET("/ping", pingHandler.HandlePing)

	AuthRoutes(r)
	UsersRoutes(r)
	VehiclesRoutes(r)
	BookingsRoutes(r)
	PaymentsRoutes(r)
	SubscriptionsRoutes(r)
	VerificationsRoutes(r)
	MessagesRoutes(r)
	NotificationsRoutes(r)
	SavedVehiclesRoutes(r)

	return r
}
