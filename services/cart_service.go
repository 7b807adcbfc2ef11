package services

import (
	"errors"
	"fmt"

	"lemonapi/entity"
	"lemonapi/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint  `json:"menuItemId" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required,min=1"`
	UnitPrice  int64 `json:"unitPrice"`
	// Price is accepted but ignored; the stored price is always
	// quantity * unit price, a tampered value never survives.
	Price int64 `json:"price"`
}

func (s *CartService) List(p Principal) ([]entity.CartItem, int64, error) {
	items, err := s.CartRepo.ListForUser(p.UserID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range items {
		subtotal += it.Price
	}
	return items, subtotal, nil
}

func (s *CartService) Add(p Principal, in *AddToCartIn) (*entity.CartItem, error) {
	m, err := s.MenuRepo.GetBasics(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item", ErrNotFound)
		}
		return nil, err
	}

	unit := in.UnitPrice
	if unit == 0 {
		unit = m.Price
	}

	line := &entity.CartItem{
		UserID:     p.UserID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  unit,
		Price:      unit * int64(in.Quantity),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *CartService) Remove(p Principal, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.DeleteForUser(tx, p.UserID, itemID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *CartService) Clear(p Principal) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearForUser(tx, p.UserID)
	})
}
