package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

// GetProductByID returns a single product plus up to four other active
// products as suggestions.
// URL param: /store/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var related []models.Product
		if err := db.Where("is_active = ? AND id <> ?", true, product.ID).
			Order("RANDOM()").
			Limit(4).
			Find(&related).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve related products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":          product,
			"related_products": related,
		})
	}
}
