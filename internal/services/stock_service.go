package services

import (
	"database/sql"
	"fmt"

	"storemgr/internal/domain"
	"storemgr/internal/repos"
	"storemgr/internal/validate"
)

type StockService struct {
	Stocks   *repos.StockRepo
	Products *repos.ProductRepo
}

func NewStockService(stocks *repos.StockRepo, products *repos.ProductRepo) *StockService {
	return &StockService{Stocks: stocks, Products: products}
}

// Add puts quantity units of an existing product on hand and reports the
// rows the upsert touched.
func (s *StockService) Add(productID int64, quantity int) (int64, error) {
	if !validate.Qty(quantity) {
		return 0, domain.Invalid("quantity", "must be a positive integer")
	}
	if _, err := s.Products.Get(productID); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
		}
		return 0, err
	}
	return s.Stocks.Add(productID, quantity)
}

func (s *StockService) Get(productID int64) (domain.StockEntry, error) {
	e, err := s.Stocks.Get(productID)
	if err == sql.ErrNoRows {
		return domain.StockEntry{}, fmt.Errorf("stock for product %d: %w", productID, domain.ErrNotFound)
	}
	return e, err
}

// Reserve decrements stock for one product; fails instead of going negative.
func (s *StockService) Reserve(productID int64, quantity int) error {
	if !validate.Qty(quantity) {
		return domain.Invalid("quantity", "must be a positive integer")
	}
	return s.Stocks.Reserve(productID, quantity)
}

// Release returns units to stock (order deletion path).
func (s *StockService) Release(productID int64, quantity int) error {
	if !validate.Qty(quantity) {
		return domain.Invalid("quantity", "must be a positive integer")
	}
	return s.Stocks.Release(productID, quantity)
}
