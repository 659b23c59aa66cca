package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/config"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Store, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// Storefront routes (JWT-protected, with a public slice)
	SetupStoreRoutes(r, db, cfg)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, cfg)
}
