package main

import (
	"log"

	"addiswheels-backend/config"
	"addiswheels-backend/db"
	_ "addiswheels-backend/docs"
	"addiswheels-backend/routes"
	"addiswheels-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title AddisWheels API
// @version 1.0
// @description Peer-to-peer vehicle rental marketplace API
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	if err := config.Load(); err != nil {
		log.Fatal("Error loading configuration:", err)
	}

	utils.InitJWT(config.Cfg.JWTSecret)

	db.InitDB()

	r := routes.SetupRouter()

	if err := r.Run(":" + config.Cfg.Port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
