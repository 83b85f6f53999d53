package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"storemgr/internal/domain"
)

type StockRepo struct{ db *sqlx.DB }

func NewStockRepo(db *sqlx.DB) *StockRepo { return &StockRepo{db: db} }

// Add increments (or initializes) the stock entry and reports rows affected.
func (r *StockRepo) Add(productID int64, quantity int) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO stocks(product_id, quantity, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(product_id) DO UPDATE
		SET quantity = stocks.quantity + excluded.quantity, updated_at = CURRENT_TIMESTAMP
	`, productID, quantity)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Get returns sql.ErrNoRows when no stock entry exists for the product.
func (r *StockRepo) Get(productID int64) (domain.StockEntry, error) {
	var e domain.StockEntry
	err := r.db.Get(&e, `
		SELECT product_id, quantity FROM stocks
		WHERE product_id = ?
	`, productID)
	return e, err
}

// Reserve atomically subtracts "by" units if enough stock exists.
func (r *StockRepo) Reserve(productID int64, by int) error {
	return decrementStock(r.db, productID, by)
}

// Release returns "by" units to the entry; no upper bound.
func (r *StockRepo) Release(productID int64, by int) error {
	return incrementStock(r.db, productID, by)
}

// decrementStock runs the guarded decrement on a DB or an open transaction.
// The WHERE quantity >= ? clause keeps the non-negative invariant without a
// separate read; zero rows affected means the guard failed.
func decrementStock(e sqlx.Execer, productID int64, by int) error {
	res, err := e.Exec(`
		UPDATE stocks
		SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP
		WHERE product_id = ? AND quantity >= ?
	`, by, productID, by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %d: %w", productID, domain.ErrInsufficientStock)
	}
	return nil
}

func incrementStock(e sqlx.Execer, productID int64, by int) error {
	_, err := e.Exec(`
		UPDATE stocks
		SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP
		WHERE product_id = ?
	`, by, productID)
	return err
}
