package repository

import (
	"lemonapi/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByDeliveryCrew(crewID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("delivery_crew_id = ?", crewID).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

// UpdateFields patches the given columns; Total and UserID are never
// part of fields, the order total is immutable after creation.
func (r *OrderRepository) UpdateFields(orderID uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes the order and its lines together.
func (r *OrderRepository) Delete(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}
