package config

import (
	"github.com/nurshapagat1/electronix-app/logger"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date and seeds static content.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
		&models.Review{},
		&models.ReviewLike{},
		&models.FounderInfo{},
		&models.Admin{},
	)
	if err != nil {
		logger.Log.Error("Database migration failed")
		return err
	}

	logger.Log.Info("Database migrations completed")

	SeedFounders(db)
	return nil
}
