package db

import (
	"addiswheels-backend/config"
	"addiswheels-backend/models"
	"addiswheels-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.Cfg.DatabaseURL
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL not defined")
		panic("Database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Booking{},
		&models.Payment{},
		&models.Subscription{},
		&models.Message{},
		&models.Notification{},
		&models.SavedVehicle{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}
