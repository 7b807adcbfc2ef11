package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code string `gorm:"uniqueIndex" json:"code"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	// Status false = placed, true = delivered.
	Status bool `json:"status"`

	// Total is a snapshot of the cart at checkout, never reconciled
	// with later menu price changes.
	Total int64     `json:"total"`
	Date  time.Time `json:"date"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
