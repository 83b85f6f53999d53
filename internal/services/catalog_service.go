package services

import (
	"database/sql"
	"fmt"

	"storemgr/internal/domain"
	"storemgr/internal/repos"
	"storemgr/internal/validate"
)

type CatalogService struct {
	Products *repos.ProductRepo
}

func NewCatalogService(products *repos.ProductRepo) *CatalogService {
	return &CatalogService{Products: products}
}

// Create validates the fields and persists a new product.
func (s *CatalogService) Create(name, sku string, price float64) (int64, error) {
	name, ok := validate.Name(name)
	if !ok {
		return 0, domain.Invalid("name", "must be 1-120 characters")
	}
	sku, ok = validate.SKU(sku)
	if !ok {
		return 0, domain.Invalid("sku", "must be 1-64 alphanumeric characters")
	}
	if !validate.Price(price) {
		return 0, domain.Invalid("price", "must be a positive number")
	}
	return s.Products.Create(name, sku, price)
}

func (s *CatalogService) Get(id int64) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if err == sql.ErrNoRows {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return p, err
}
