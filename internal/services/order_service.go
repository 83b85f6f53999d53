package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storemgr/internal/domain"
	"storemgr/internal/repos"
	"storemgr/internal/validate"
)

// Line is one requested order line.
type Line struct {
	ProductID int64
	Quantity  int
}

type OrderService struct {
	Users    *repos.UserRepo
	Products *repos.ProductRepo
	Orders   *repos.OrderRepo
}

func NewOrderService(users *repos.UserRepo, products *repos.ProductRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Users: users, Products: products, Orders: orders}
}

// Placed is the creation result surfaced to the caller.
type Placed struct {
	OrderID   int64
	Reference string
	Total     float64
}

// Place validates the user and every line, prices the order from the
// catalog, and reserves stock all-or-nothing.
func (s *OrderService) Place(userID int64, lines []Line) (Placed, error) {
	if len(lines) == 0 {
		return Placed{}, domain.Invalid("items", "order needs at least one item")
	}
	for _, l := range lines {
		if l.ProductID <= 0 {
			return Placed{}, domain.Invalid("product_id", "must be a positive integer")
		}
		if !validate.Qty(l.Quantity) {
			return Placed{}, domain.Invalid("quantity", "must be a positive integer")
		}
	}

	if _, err := s.Users.ByID(userID); err != nil {
		if err == sql.ErrNoRows {
			return Placed{}, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		return Placed{}, err
	}

	// Price each line at placement time.
	items := make([]domain.OrderItem, 0, len(lines))
	total := 0.0
	for _, l := range lines {
		p, err := s.Products.Get(l.ProductID)
		if err == sql.ErrNoRows {
			return Placed{}, fmt.Errorf("product %d: %w", l.ProductID, domain.ErrNotFound)
		}
		if err != nil {
			return Placed{}, err
		}
		items = append(items, domain.OrderItem{ProductID: p.ID, Quantity: l.Quantity, Price: p.Price})
		total += p.Price * float64(l.Quantity)
	}

	reference := uuid.NewString()
	orderID, err := s.Orders.CreateWithReservations(reference, userID, items, total)
	if err != nil {
		return Placed{}, err
	}
	return Placed{OrderID: orderID, Reference: reference, Total: total}, nil
}

// Delete releases every line item's stock and marks the order deleted.
// Deleting twice is a not-found, same as deleting a ghost.
func (s *OrderService) Delete(orderID int64) error {
	err := s.Orders.DeleteAndRelease(orderID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return err
}

func (s *OrderService) Get(orderID int64) (domain.Order, []repos.OrderItemRow, error) {
	o, items, err := s.Orders.Get(orderID)
	if err == sql.ErrNoRows {
		return domain.Order{}, nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return o, items, err
}

// GetUser resolves a reference user.
func (s *OrderService) GetUser(userID int64) (*domain.User, error) {
	u, err := s.Users.ByID(userID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	return u, err
}
