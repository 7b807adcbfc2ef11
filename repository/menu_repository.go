package repository

import (
	"lemonapi/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GetBasics fetches just enough of a menu item to price a cart line.
func (r *MenuRepository) GetBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, price").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
