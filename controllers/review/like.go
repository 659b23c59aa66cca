package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/logger"
	"github.com/nurshapagat1/electronix-app/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ToggleReviewLike flips the liked state for a (review, customer) pair:
// the like row is deleted if present, created otherwise. Either way the
// review's denormalized counter is rewritten as the exact row count, so
// repeated toggles alternate instead of accumulating.
func ToggleReviewLike(db *gorm.DB, reviewID, customerID uint) (liked bool, likes int64, err error) {
	var review models.Review
	if err := db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrReviewNotFound
		}
		return false, 0, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var like models.ReviewLike
		findErr := tx.Where("review_id = ? AND customer_id = ?", review.ID, customerID).
			First(&like).Error
		switch {
		case findErr == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			like = models.ReviewLike{ReviewID: review.ID, CustomerID: customerID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
		default:
			return findErr
		}

		if err := tx.Model(&models.ReviewLike{}).
			Where("review_id = ?", review.ID).Count(&likes).Error; err != nil {
			return err
		}
		return tx.Model(&models.Review{}).Where("id = ?", review.ID).
			Update("likes", likes).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

// POST /store/reviews/:review_id/like
func ToggleReviewLikeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}
		reviewID, ok := parseUintParam(c, "review_id")
		if !ok {
			return
		}

		liked, likes, err := ToggleReviewLike(db, reviewID, customer.ID)
		if err != nil {
			if errors.Is(err, ErrReviewNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			logger.Error(c, "Like toggle failed", err, zap.Uint("review_id", reviewID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
			return
		}

		message := "Removed like from review"
		if liked {
			message = "Liked the review!"
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked, "likes": likes})
	}
}
