package repos

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"storemgr/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderItemRow is the line-item shape returned to the order endpoints.
type OrderItemRow struct {
	ProductID int64   `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

// CreateWithReservations places an order inside one transaction: every line
// item is checked and decremented against stock, then the header and items
// are inserted. Any failure rolls the whole thing back, so stock is never
// left partially reserved.
func (r *OrderRepo) CreateWithReservations(reference string, userID int64, items []domain.OrderItem, total float64) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	// Pre-check every item before mutating anything; a product with no
	// stock entry counts as zero on hand.
	for _, it := range items {
		var qty int
		err := tx.Get(&qty, `SELECT quantity FROM stocks WHERE product_id = ?`, it.ProductID)
		if err == sql.ErrNoRows {
			qty = 0
		} else if err != nil {
			return 0, err
		}
		if qty < it.Quantity {
			return 0, fmt.Errorf("product %d (need %d, have %d): %w",
				it.ProductID, it.Quantity, qty, domain.ErrInsufficientStock)
		}
	}

	for _, it := range items {
		if err := decrementStock(tx, it.ProductID, it.Quantity); err != nil {
			return 0, err
		}
	}

	res, err := tx.Exec(`
	  INSERT INTO orders(reference, user_id, total, deleted, created_at)
	  VALUES(?, ?, ?, 0, CURRENT_TIMESTAMP)
	`, reference, userID, total)
	if err != nil {
		return 0, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, quantity, price)
		  VALUES(?, ?, ?, ?)
		`, orderID, it.ProductID, it.Quantity, it.Price); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

// DeleteAndRelease marks an active order deleted and returns every line
// item's quantity to stock, in one transaction. sql.ErrNoRows means the
// order is absent or already deleted.
func (r *OrderRepo) DeleteAndRelease(orderID int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	if err := tx.Get(&id, `SELECT id FROM orders WHERE id = ? AND deleted = 0`, orderID); err != nil {
		return err
	}

	var items []domain.OrderItem
	if err := tx.Select(&items, `
	  SELECT order_id, product_id, quantity, price
	  FROM order_items WHERE order_id = ?
	`, orderID); err != nil {
		return err
	}

	for _, it := range items {
		if err := incrementStock(tx, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`UPDATE orders SET deleted = 1 WHERE id = ?`, orderID); err != nil {
		return err
	}

	return tx.Commit()
}

// Get returns an active order header with its items.
func (r *OrderRepo) Get(orderID int64) (domain.Order, []OrderItemRow, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
		SELECT id, reference, user_id, total, deleted, COALESCE(created_at,'') AS created_at
		FROM orders
		WHERE id = ? AND deleted = 0
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}

	var items []OrderItemRow
	if err := r.db.Select(&items, `
		SELECT oi.product_id, p.name, oi.quantity, oi.price, (oi.quantity * oi.price) AS subtotal
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY p.name
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}

	return o, items, nil
}
