package repository

import (
	"errors"

	"lemonapi/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

// UpsertLine writes the line for (user, menu item); an existing line is
// overwritten, last write wins.
func (r *CartRepository) UpsertLine(tx *gorm.DB, line *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", line.UserID, line.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity = line.Quantity
		exist.UnitPrice = line.UnitPrice
		exist.Price = line.Price
		if err := tx.Save(&exist).Error; err != nil {
			return err
		}
		*line = exist
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(line).Error
}

func (r *CartRepository) GetForUser(userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) DeleteForUser(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
