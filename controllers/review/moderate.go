package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

type SetApprovalRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// GET /admin/reviews — includes unapproved reviews.
func ListAllReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Preload("Customer.User").
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// PUT /admin/reviews/:review_id/approval
func SetReviewApproval(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, ok := parseUintParam(c, "review_id")
		if !ok {
			return
		}

		var req SetApprovalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_approved is required"})
			return
		}

		var review models.Review
		if err := db.First(&review, reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}

		if err := db.Model(&review).Update("is_approved", *req.IsApproved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review approval updated"})
	}
}

// DELETE /admin/reviews/:review_id — removes the review and its likes.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, ok := parseUintParam(c, "review_id")
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("review_id = ?", reviewID).
				Delete(&models.ReviewLike{}).Error; err != nil {
				return err
			}
			res := tx.Delete(&models.Review{}, reviewID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrReviewNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrReviewNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
