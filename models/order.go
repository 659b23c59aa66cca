package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	// Order lifecycle, linear: cart is the mutable basket, every later
	// status is a fulfilled sale.
	OrderStatusCart       OrderStatus = "cart"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusCart:       0,
	OrderStatusPending:    1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusCompleted:  4,
}

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(status))
	if _, ok := orderStatusRank[s]; !ok {
		return "", errors.New("invalid order status")
	}
	return s, nil
}

// CanAdvanceTo reports whether next is the single valid forward step from s.
// No reverse or skipped transitions are allowed.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	cur, ok := orderStatusRank[s]
	nxt, ok2 := orderStatusRank[next]
	return ok && ok2 && nxt == cur+1
}

// Order holds at most one row per customer with status "cart", enforced by
// a partial unique index so concurrent get-or-create calls cannot create
// two baskets.
type Order struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint           `gorm:"not null;index:idx_orders_customer_cart,unique,where:status = 'cart'" json:"customer_id"`
	Customer   Customer       `gorm:"foreignKey:CustomerID" json:"customer"`
	Status     OrderStatus    `gorm:"type:VARCHAR(20);default:'cart'" json:"status"`
	TotalPrice float64        `gorm:"default:0" json:"total_price"`
	OrderRef   string         `json:"order_ref"`
	Items      []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time      `json:"created_at"`
}

// OrderProduct is one product line within an order. Price is a snapshot of
// the product price at add-time; later catalog price changes do not touch
// existing lines.
type OrderProduct struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"uniqueIndex:idx_order_product;index" json:"order_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_order_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

// Subtotal is the line's contribution to the order total.
func (op OrderProduct) Subtotal() float64 {
	return float64(op.Quantity) * op.Price
}

// OrderItemsTotal sums quantity x snapshot price across lines. It is the
// single definition of an order total; the stored column only ever holds
// the result of this function.
func OrderItemsTotal(items []OrderProduct) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
