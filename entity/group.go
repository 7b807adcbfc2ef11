package entity

import (
	"gorm.io/gorm"
)

// Group names are seeded at startup ("Manager", "Delivery crew").
// Membership is the sole basis for role resolution.
type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
