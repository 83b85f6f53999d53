package domain

type Product struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	SKU       string  `db:"sku" json:"sku"`
	Price     float64 `db:"price" json:"price"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

// StockEntry is the current on-hand quantity for one product.
// One row per product; quantity never goes below zero.
type StockEntry struct {
	ProductID int64 `db:"product_id" json:"product_id"`
	Quantity  int   `db:"quantity" json:"quantity"`
}

type Order struct {
	ID        int64   `db:"id" json:"id"`
	Reference string  `db:"reference" json:"reference"`
	UserID    int64   `db:"user_id" json:"user_id"`
	Total     float64 `db:"total" json:"total"`
	Deleted   bool    `db:"deleted" json:"deleted"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type OrderItem struct {
	OrderID   int64   `db:"order_id" json:"-"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
}
