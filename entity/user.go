package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`

	// IsStaff gates the group-membership admin endpoints only;
	// Manager / Delivery crew authority comes from Groups.
	IsStaff bool `gorm:"default:false" json:"isStaff"`

	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
}
