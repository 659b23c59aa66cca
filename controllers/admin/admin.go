package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/logger"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin

		if err := db.Find(&admins).Error; err != nil {
			logger.Error(c, "Failed to fetch admins", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}

		c.JSON(http.StatusOK, admins)
	}
}
