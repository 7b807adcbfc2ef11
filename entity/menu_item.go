package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string `json:"title"`
	Price    int64  `json:"price"` // smallest currency unit
	Featured bool   `json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
