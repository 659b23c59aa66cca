package cartControllers

import (
	"errors"

	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cart actions accepted by the adjust endpoint.
const (
	ActionAdd      = "add"
	ActionSubtract = "subtract"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidAction   = errors.New("invalid cart action")
)

// getOrCreateCartOrder returns the customer's single cart-status order,
// creating it if absent. The partial unique index on orders(customer_id)
// WHERE status = 'cart' turns a create race into a no-op insert; the
// follow-up read returns whichever row won.
func getOrCreateCartOrder(db *gorm.DB, customerID uint) (*models.Order, error) {
	order := models.Order{CustomerID: customerID, Status: models.OrderStatusCart}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&order).Error; err != nil {
		return nil, err
	}
	if err := db.Where("customer_id = ? AND status = ?", customerID, models.OrderStatusCart).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// AddToCart puts one unit of a product into the customer's cart. A line
// that already exists gains quantity 1 through a single upsert, so two
// rapid clicks cannot produce two lines for the same product. The order
// total is recomputed before the transaction commits.
func AddToCart(db *gorm.DB, customerID, productID uint) (*models.Order, error) {
	var product models.Product
	if err := db.Where("is_active = ?", true).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = getOrCreateCartOrder(tx, customerID)
		if err != nil {
			return err
		}

		// Price is snapshotted here; later catalog price changes do not
		// alter this line.
		item := models.OrderProduct{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  1,
			Price:     product.Price,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("order_products.quantity + 1"),
			}),
		}).Create(&item).Error; err != nil {
			return err
		}

		_, err = RecalcOrderTotal(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items").First(order, order.ID).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// AdjustCartItem applies an "add" or "subtract" step to a product line.
// The order and the line are get-or-created first, so adjusting always has
// something to act on. Subtracting a quantity-1 line deletes it, and an
// order left with no lines is deleted outright.
func AdjustCartItem(db *gorm.DB, customerID, productID uint, action string) error {
	if action != ActionAdd && action != ActionSubtract {
		return ErrInvalidAction
	}

	var product models.Product
	if err := db.Where("is_active = ?", true).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		order, err := getOrCreateCartOrder(tx, customerID)
		if err != nil {
			return err
		}

		var item models.OrderProduct
		err = tx.Where("order_id = ? AND product_id = ?", order.ID, product.ID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.OrderProduct{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  1,
				Price:     product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		switch action {
		case ActionAdd:
			item.Quantity++
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		case ActionSubtract:
			if item.Quantity > 1 {
				item.Quantity--
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			} else if err := tx.Delete(&item).Error; err != nil {
				return err
			}
		}

		return cleanupOrRecalc(tx, order.ID)
	})
}

// RemoveCartItem deletes one line by its own id, scoped to the calling
// customer's cart order. A line belonging to someone else's order is
// reported exactly like a missing one.
func RemoveCartItem(db *gorm.DB, customerID, itemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("customer_id = ? AND status = ?", customerID, models.OrderStatusCart).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		res := tx.Where("id = ? AND order_id = ?", itemID, order.ID).
			Delete(&models.OrderProduct{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemNotFound
		}

		return cleanupOrRecalc(tx, order.ID)
	})
}

// ClearCart deletes the customer's cart order and all of its lines.
func ClearCart(db *gorm.DB, customerID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("customer_id = ? AND status = ?", customerID, models.OrderStatusCart).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}

		if err := tx.Where("order_id = ?", order.ID).
			Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// cleanupOrRecalc finishes every cart mutation: an order with no lines
// left is deleted, otherwise its stored total is brought back in line with
// its lines.
func cleanupOrRecalc(tx *gorm.DB, orderID uint) error {
	var count int64
	if err := tx.Model(&models.OrderProduct{}).
		Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return tx.Delete(&models.Order{}, orderID).Error
	}
	_, err := RecalcOrderTotal(tx, orderID)
	return err
}

// RecalcOrderTotal re-reads the order's lines and persists their sum as
// the order total. Every cart mutation that changes line composition or
// quantities must go through here; checkout stamps the final total itself
// from the same OrderItemsTotal sum.
func RecalcOrderTotal(tx *gorm.DB, orderID uint) (float64, error) {
	var items []models.OrderProduct
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return 0, err
	}

	total := models.OrderItemsTotal(items)
	if err := tx.Model(&models.Order{}).Where("id = ?", orderID).
		Update("total_price", total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
