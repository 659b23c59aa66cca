package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

// ProductWithCart is a catalog row annotated with the caller's cart line,
// so the storefront can render quantity steppers in place.
type ProductWithCart struct {
	models.Product
	CartItemID   uint `json:"cart_item_id,omitempty"`
	CartQuantity int  `json:"cart_quantity"`
}

// GetProducts lists active products, newest first, with optional search
// and price-range filters. When the request is authenticated, each product
// carries the caller's current cart quantity.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Where("is_active = ?", true)

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR details ILIKE ?", likePattern, likePattern)
		}
		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		itemsByProduct, cartItemCount := cartAnnotations(c, db)

		annotated := make([]ProductWithCart, 0, len(products))
		for _, p := range products {
			row := ProductWithCart{Product: p}
			if item, ok := itemsByProduct[p.ID]; ok {
				row.CartItemID = item.ID
				row.CartQuantity = item.Quantity
			}
			annotated = append(annotated, row)
		}

		c.JSON(http.StatusOK, gin.H{
			"products":        annotated,
			"cart_item_count": cartItemCount,
		})
	}
}

// cartAnnotations loads the caller's cart lines keyed by product. Returns
// empty results for unauthenticated or cart-less callers.
func cartAnnotations(c *gin.Context, db *gorm.DB) (map[uint]models.OrderProduct, int) {
	itemsByProduct := make(map[uint]models.OrderProduct)

	userIDVal, exists := c.Get("user_id")
	if !exists {
		return itemsByProduct, 0
	}
	userID, _ := userIDVal.(string)

	var customer models.Customer
	if err := db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return itemsByProduct, 0
	}

	var order models.Order
	if err := db.Preload("Items").
		Where("customer_id = ? AND status = ?", customer.ID, models.OrderStatusCart).
		First(&order).Error; err != nil {
		return itemsByProduct, 0
	}

	for _, item := range order.Items {
		itemsByProduct[item.ProductID] = item
	}
	return itemsByProduct, len(order.Items)
}

// GetAllProducts is the admin listing; inactive products included.
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
