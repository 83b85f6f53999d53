package repos

import (
	"storemgr/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Create inserts a product and returns its server-assigned id.
func (r *ProductRepo) Create(name, sku string, price float64) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, sku, price, created_at)
	  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
	`, name, sku, price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Get returns sql.ErrNoRows when the product does not exist.
func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, sku, price, COALESCE(created_at,'') AS created_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}
