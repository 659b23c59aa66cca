package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/config"
	adminControllers "github.com/nurshapagat1/electronix-app/controllers/admin"
	founderControllers "github.com/nurshapagat1/electronix-app/controllers/founder"
	orderControllers "github.com/nurshapagat1/electronix-app/controllers/order"
	productControllers "github.com/nurshapagat1/electronix-app/controllers/product"
	reviewControllers "github.com/nurshapagat1/electronix-app/controllers/review"
	userControllers "github.com/nurshapagat1/electronix-app/controllers/user"
	"github.com/nurshapagat1/electronix-app/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the admin console endpoints. Every route in
// this group requires the X-API-KEY header.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(cfg.AdminAPIKey))
	{
		products := admin.Group("/products")
		{
			products.GET("", productControllers.GetAllProducts(db))
			products.POST("", productControllers.CreateProduct(db))
			products.PUT("/:id", productControllers.UpdateProduct(db))
			products.DELETE("/:id", productControllers.DeactivateProduct(db))
			products.GET("/export-excel", productControllers.ExportProductsToExcel(db))
			products.POST("/import-excel", productControllers.ImportProductsFromExcel(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrdersHandler(db))
			orders.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orders.GET("/feed", orderControllers.OrderFeedHandler)
			orders.GET("/customer/:customer_id", orderControllers.GetCustomerOrdersHandler(db))
			orders.GET("/detail/:order_id", orderControllers.GetOrderByIDHandler(db))
			orders.PUT("/:order_id/status", orderControllers.UpdateOrderStatusHandler(db))
			orders.DELETE("/:order_id", orderControllers.DeleteOrderHandler(db))
		}

		reviews := admin.Group("/reviews")
		{
			reviews.GET("", reviewControllers.ListAllReviews(db))
			reviews.PUT("/:review_id/approval", reviewControllers.SetReviewApproval(db))
			reviews.DELETE("/:review_id", reviewControllers.DeleteReview(db))
		}

		founders := admin.Group("/founders")
		{
			founders.GET("", founderControllers.GetFounders(db))
			founders.POST("", founderControllers.CreateFounder(db))
			founders.PUT("/:id", founderControllers.UpdateFounder(db))
			founders.DELETE("/:id", founderControllers.DeleteFounder(db))
		}

		admin.GET("/customers", userControllers.GetAllCustomers(db))

		admins := admin.Group("/admins")
		{
			admins.GET("", adminControllers.GetAllAdmins(db))
			admins.GET("/pending", adminControllers.ListPendingAdmins(db))
			admins.POST("/approve", adminControllers.ApproveAdmin(db))
			admins.POST("/reject", adminControllers.RejectAdmin(db))
		}
	}
}
