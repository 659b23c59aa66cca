package config

import (
	"github.com/nurshapagat1/electronix-app/logger"
	"github.com/nurshapagat1/electronix-app/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedFounders makes sure the about page has content on a fresh database.
// Existing rows are left untouched.
func SeedFounders(db *gorm.DB) {
	founders := []models.FounderInfo{
		{
			Name:     "Shapagat Nur",
			Position: "Founder & CEO",
			Bio:      "Started Electronix to make quality laptops affordable.",
			Email:    "shapagat@electronix.example",
			IsActive: true,
		},
		{
			Name:     "Aruzhan Bek",
			Position: "Co-founder & CTO",
			Bio:      "Runs the product catalog and everything technical.",
			Email:    "aruzhan@electronix.example",
			IsActive: true,
		},
	}

	for _, founder := range founders {
		var existing models.FounderInfo
		err := db.Where("name = ?", founder.Name).First(&existing).Error
		if err != gorm.ErrRecordNotFound {
			continue
		}
		if err := db.Create(&founder).Error; err != nil {
			logger.Log.Warn("Failed to seed founder", zap.String("name", founder.Name), zap.Error(err))
		}
	}
}
