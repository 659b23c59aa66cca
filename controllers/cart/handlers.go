package cartControllers

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

// currentCustomer resolves the authenticated user to a customer profile,
// creating the profile on first use. Writes the error response itself when
// it fails.
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

// GET /store/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}

		var order models.Order
		err := db.Preload("Items.Product").
			Where("customer_id = ? AND status = ?", customer.ID, models.OrderStatusCart).
			First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(order.Items) == 0) {
			c.JSON(http.StatusOK, gin.H{"empty_cart": true})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		totalItems := 0
		for _, item := range order.Items {
			totalItems += item.Quantity
		}
		c.JSON(http.StatusOK, gin.H{
			"empty_cart":  false,
			"order":       order,
			"total_items": totalItems,
		})
	}
}

// POST /store/cart/:product_id
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}
		productID, ok := parseUintParam(c, "product_id")
		if !ok {
			return
		}

		order, err := AddToCart(db, customer.ID, productID)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logger.Error(c, "Add to cart failed", err, zap.Uint("product_id", productID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "order": order})
	}
}

// POST /store/cart/:product_id/:action
func AdjustCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}
		productID, ok := parseUintParam(c, "product_id")
		if !ok {
			return
		}
		action := c.Param("action")

		if err := AdjustCartItem(db, customer.ID, productID, action); err != nil {
			switch {
			case errors.Is(err, ErrInvalidAction):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be add or subtract"})
			case errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			default:
				logger.Error(c, "Cart adjust failed", err,
					zap.Uint("product_id", productID), zap.String("action", action))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /store/cart/items/:item_id
func RemoveCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}
		itemID, ok := parseUintParam(c, "item_id")
		if !ok {
			return
		}

		if err := RemoveCartItem(db, customer.ID, itemID); err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in your cart"})
				return
			}
			logger.Error(c, "Cart item removal failed", err, zap.Uint("item_id", itemID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /store/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}

		if err := ClearCart(db, customer.ID); err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusOK, gin.H{"message": "Your cart is already empty"})
				return
			}
			logger.Error(c, "Cart clear failed", err, zap.Uint("customer_id", customer.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
