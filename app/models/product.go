package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents an item available for purchase or inventory tracking.
// The order service only ever reads products; its Price is the catalog
// price snapshotted onto order items at creation time.
type Product struct {
	gorm.Model
	Name        string          `gorm:"size:255;not null;index"       json:"name"`
	Description string          `gorm:"type:text"                     json:"description"`
	SKU         string          `gorm:"size:50;uniqueIndex;not null"  json:"sku"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"   json:"price"`
	Stock       int             `gorm:"not null;default:0"            json:"stock"`
	Active      bool            `gorm:"not null;default:true"         json:"is_active"`
}
