package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/logger"
	"github.com/nurshapagat1/electronix-app/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type SubmitReviewInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// currentCustomer mirrors the cart package's resolver: authenticated user
// in, customer profile out, created on first use.
func currentCustomer(c *gin.Context, db *gorm.DB) (*models.Customer, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)

	customer, err := models.GetOrCreateCustomer(db, userID)
	if err != nil {
		logger.Error(c, "Failed to resolve customer profile", err, zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve customer profile"})
		return nil, false
	}
	return customer, true
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// POST /store/reviews
func SubmitReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}

		var input SubmitReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := models.Review{
			CustomerID: customer.ID,
			Title:      input.Title,
			Content:    input.Content,
			Rating:     input.Rating,
			IsApproved: true,
		}
		if err := db.Create(&review).Error; err != nil {
			logger.Error(c, "Review creation failed", err, zap.Uint("customer_id", customer.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Thank you for your feedback! Your review has been submitted.",
			"review":  review,
		})
	}
}

// GET /store/reviews?page=N
func ListReviews(db *gorm.DB) gin.HandlerFunc {
	const pageSize = 10
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		var reviews []models.Review
		if err := db.
			Preload("Customer.User").
			Where("is_approved = ?", true).
			Order("created_at DESC").
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"reviews": reviews, "page": page})
	}
}

// GET /store/reviews/:review_id
// Includes whether the caller has liked it when a user is authenticated.
func GetReviewByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID := c.Param("review_id")

		var review models.Review
		if err := db.Preload("Customer.User").
			Where("is_approved = ?", true).
			First(&review, "id = ?", reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}

		hasLiked := false
		if userIDVal, exists := c.Get("user_id"); exists {
			userID, _ := userIDVal.(string)
			var customer models.Customer
			if err := db.Where("user_id = ?", userID).First(&customer).Error; err == nil {
				var count int64
				db.Model(&models.ReviewLike{}).
					Where("review_id = ? AND customer_id = ?", review.ID, customer.ID).
					Count(&count)
				hasLiked = count > 0
			}
		}

		c.JSON(http.StatusOK, gin.H{"review": review, "has_liked": hasLiked})
	}
}
