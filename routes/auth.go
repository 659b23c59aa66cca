package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/auth"
	"github.com/nurshapagat1/electronix-app/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		// Regular customer Google login
		authGroup.POST("/google-user", func(c *gin.Context) {
			auth.GoogleUserLoginHandler(c.Writer, c.Request, db, cfg)
		})

		// Google Admin login (wrapped as a Gin handler)
		authGroup.POST("/google-admin", func(c *gin.Context) {
			auth.GoogleAdminLoginHandler(c.Writer, c.Request, db, cfg)
		})
	}
}
