package entity

import (
	"gorm.io/gorm"
)

// OrderItem is an immutable snapshot of a cart line, created in bulk
// when the order is placed and deleted only with its order.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Price     int64 `json:"price"`
}
