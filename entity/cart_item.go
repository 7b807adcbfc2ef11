package entity

import (
	"gorm.io/gorm"
)

// CartItem is a pending, unordered line owned by one user.
// Price is always Quantity * UnitPrice at last write; the services
// layer recomputes it on every create/update.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Price     int64 `json:"price"`
}
