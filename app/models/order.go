package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer order. TotalAmount is derived: it always equals the
// sum of the current items' line totals and is recomputed from scratch
// whenever the item set changes, never incrementally patched.
type Order struct {
	gorm.Model
	CustomerID   uint            `gorm:"not null;index"                       json:"customer"`
	Customer     Customer        `gorm:"foreignKey:CustomerID"                json:"-"`
	CustomerName string          `gorm:"-"                                    json:"customer_name,omitempty"`
	Status       OrderStatus     `gorm:"size:20;not null;default:pending"     json:"status"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID"                   json:"items"`
}

// OrderItem is one line of an order. It has no lifecycle of its own: items
// are created and destroyed together with their order (or replaced wholesale
// on order update), so it does not carry soft-delete bookkeeping.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey"                   json:"id"`
	OrderID     uint            `gorm:"not null;index"               json:"-"`
	ProductID   uint            `gorm:"not null;index"               json:"product"`
	Product     Product         `gorm:"foreignKey:ProductID"         json:"-"`
	ProductName string          `gorm:"-"                            json:"product_name,omitempty"`
	Quantity    int             `gorm:"not null;default:1"           json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"  json:"price"`
	LineTotal   decimal.Decimal `gorm:"-"                            json:"line_total"`
	CreatedAt   time.Time       `json:"-"`
}

// LineTotal returns quantity × unit price, the derived value of one item.
func LineTotal(quantity int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
