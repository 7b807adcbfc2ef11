package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"lemonapi/entity"
	"lemonapi/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	// one lock per user so two concurrent checkouts cannot both
	// consume the same cart lines
	checkout sync.Map
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

type PlaceOrderRes struct {
	ID    uint   `json:"id"`
	Code  string `json:"code"`
	Total int64  `json:"total"`
}

func (s *OrderService) checkoutLock(userID uint) *sync.Mutex {
	v, _ := s.checkout.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// PlaceOrder converts the user's cart into an order plus line snapshots
// and empties the cart, all in one transaction. An empty cart still
// produces an order with total 0 and no lines.
func (s *OrderService) PlaceOrder(p Principal) (*PlaceOrderRes, error) {
	mu := s.checkoutLock(p.UserID)
	mu.Lock()
	defer mu.Unlock()

	lines, err := s.CartRepo.ListForUser(p.UserID)
	if err != nil {
		return nil, err
	}

	// total comes from the stored line prices, not current menu prices
	var total int64
	for _, l := range lines {
		total += l.Price
	}

	var out PlaceOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Code:   uuid.NewString(),
			UserID: p.UserID,
			Status: false,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			})
		}
		if err := s.Repo.CreateItems(tx, items); err != nil {
			return err
		}

		if err := s.CartRepo.ClearForUser(tx, p.UserID); err != nil {
			return err
		}

		out = PlaceOrderRes{ID: order.ID, Code: order.Code, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"userId": p.UserID, "orderId": out.ID, "total": out.Total, "lines": len(lines),
	}).Info("order placed")
	return &out, nil
}

// List applies the role visibility rule: managers see every order,
// delivery crew only assigned orders, customers only their own.
func (s *OrderService) List(p Principal) ([]entity.Order, error) {
	switch p.Role {
	case RoleManager:
		return s.Repo.ListAll()
	case RoleDeliveryCrew:
		return s.Repo.ListByDeliveryCrew(p.UserID)
	default:
		return s.Repo.ListByUser(p.UserID)
	}
}

// Get enforces strict owner equality for every role, managers and
// delivery crew included. See DESIGN.md for why this is narrower than
// the listing rule.
func (s *OrderService) Get(p Principal, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.UserID != p.UserID {
		return nil, fmt.Errorf("%w: incorrect user for order", ErrForbidden)
	}
	return o, nil
}

type UpdateOrderIn struct {
	Status         *bool `json:"status"`
	DeliveryCrewID *uint `json:"deliveryCrewId"`
}

// Update is the full update path, manager only. Total, user and line
// snapshots stay untouched.
func (s *OrderService) Update(p Principal, orderID uint, in *UpdateOrderIn) error {
	if p.Role != RoleManager {
		return fmt.Errorf("%w: you are not authorized to perform this action", ErrForbidden)
	}
	if in.Status == nil || in.DeliveryCrewID == nil {
		return errors.New("status and deliveryCrewId are required")
	}
	return s.apply(orderID, map[string]any{
		"status":           *in.Status,
		"delivery_crew_id": *in.DeliveryCrewID,
	})
}

// PartialUpdate allows a manager to change status and crew assignment;
// delivery crew may flip status only.
func (s *OrderService) PartialUpdate(p Principal, orderID uint, in *UpdateOrderIn) error {
	switch p.Role {
	case RoleManager:
	case RoleDeliveryCrew:
		if in.DeliveryCrewID != nil {
			return fmt.Errorf("%w: delivery crew may only update status", ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: you are not authorized to perform this action", ErrForbidden)
	}

	fields := map[string]any{}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.DeliveryCrewID != nil {
		fields["delivery_crew_id"] = *in.DeliveryCrewID
	}
	if len(fields) == 0 {
		return nil
	}
	return s.apply(orderID, fields)
}

func (s *OrderService) Delete(p Principal, orderID uint) error {
	if p.Role != RoleManager {
		return fmt.Errorf("%w: you are not authorized to perform this action", ErrForbidden)
	}
	if _, err := s.Repo.Get(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Delete(orderID)
}

func (s *OrderService) apply(orderID uint, fields map[string]any) error {
	n, err := s.Repo.UpdateFields(orderID, fields)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
