package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Picture *string `json:"picture"`
}

// callerUserID pulls the authenticated user id out of the context. A
// missing or non-string claim is rejected, never dereferenced.
func callerUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// GET /store/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerUserID(c)
		if !ok {
			return
		}

		customer, err := models.GetOrCreateCustomer(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		if err := db.Preload("User").First(customer, customer.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		c.JSON(http.StatusOK, customer)
	}
}

// PUT /store/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerUserID(c)
		if !ok {
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer, err := models.GetOrCreateCustomer(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}

		if input.Phone != nil {
			customer.Phone = *input.Phone
		}
		if input.Address != nil {
			customer.Address = *input.Address
		}
		if err := db.Save(customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		// Name and picture live on the account row.
		if input.Name != nil || input.Picture != nil {
			updates := models.User{}
			if input.Name != nil {
				updates.Name = *input.Name
			}
			if input.Picture != nil {
				updates.Picture = *input.Picture
			}
			if err := db.Model(&models.User{}).Where("id = ?", customer.UserID).
				Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
				return
			}
		}

		if err := db.Preload("User").First(customer, customer.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload profile"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// GET /admin/customers
func GetAllCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customers []models.Customer
		if err := db.Preload("User").Order("created_at DESC").Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
