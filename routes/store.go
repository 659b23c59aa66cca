package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/config"
	cartControllers "github.com/nurshapagat1/electronix-app/controllers/cart"
	founderControllers "github.com/nurshapagat1/electronix-app/controllers/founder"
	productControllers "github.com/nurshapagat1/electronix-app/controllers/product"
	reviewControllers "github.com/nurshapagat1/electronix-app/controllers/review"
	userControllers "github.com/nurshapagat1/electronix-app/controllers/user"
	"github.com/nurshapagat1/electronix-app/middleware"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the customer-facing storefront endpoints.
// Public pages run behind OptionalToken so anonymous visitors still get
// content, while signed-in customers get personalized annotations
// (cart quantities, has_liked flags).
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	public := r.Group("/store")
	public.Use(middleware.OptionalToken(cfg.JWTSecret))
	{
		public.GET("/products", productControllers.GetProducts(db))
		public.GET("/products/:id", productControllers.GetProductByID(db))
		public.GET("/reviews", reviewControllers.ListReviews(db))
		public.GET("/reviews/:review_id", reviewControllers.GetReviewByID(db))
		public.GET("/about", founderControllers.GetAboutPage(db))
	}

	store := r.Group("/store")
	store.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cart := store.Group("/cart")
		{
			cart.GET("", cartControllers.GetCart(db))
			cart.POST("/:product_id", cartControllers.AddToCartHandler(db))
			cart.POST("/:product_id/:action", cartControllers.AdjustCartItemHandler(db))
			cart.DELETE("/items/:item_id", cartControllers.RemoveCartItemHandler(db))
			cart.DELETE("", cartControllers.ClearCartHandler(db))
		}

		store.POST("/checkout", cartControllers.CheckoutHandler(db))

		store.POST("/reviews", reviewControllers.SubmitReview(db))
		store.POST("/reviews/:review_id/like", reviewControllers.ToggleReviewLikeHandler(db))

		store.GET("/profile", userControllers.GetProfile(db))
		store.PUT("/profile", userControllers.UpdateProfile(db))
	}
}
