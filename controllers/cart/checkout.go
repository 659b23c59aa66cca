package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderControllers "github.com/nurshapagat1/electronix-app/controllers/order"
	"github.com/nurshapagat1/electronix-app/logger"
	"github.com/nurshapagat1/electronix-app/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Checkout advances the customer's cart order to pending. An absent or
// empty cart is refused without any state change. The cart order itself
// becomes the pending order; no new order row is created, and the customer
// stays cart-less until the next add-to-cart.
func Checkout(db *gorm.DB, customerID uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").
		Where("customer_id = ? AND status = ?", customerID, models.OrderStatusCart).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(order.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// The status guard in the WHERE clause makes a double submit lose
	// cleanly instead of re-stamping the order.
	res := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusCart).
		Updates(map[string]interface{}{
			"status":      models.OrderStatusPending,
			"total_price": models.OrderItemsTotal(order.Items),
			"order_ref":   generateOrderRef(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrEmptyCart
	}

	if err := db.Preload("Items").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /store/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c, db)
		if !ok {
			return
		}

		order, err := Checkout(db, customer.ID)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
				return
			}
			logger.Error(c, "Checkout failed", err, zap.Uint("customer_id", customer.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		orderControllers.BroadcastOrderPlaced(*order)
		logger.Info(c, "Order placed",
			zap.Uint("order_id", order.ID), zap.String("order_ref", order.OrderRef))

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
	}
}
