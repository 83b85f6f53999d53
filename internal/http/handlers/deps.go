package handlers

import (
	"storemgr/internal/repos"
	"storemgr/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler *ProductHandler
	StockHandler   *StockHandler
	OrderHandler   *OrderHandler
	UserHandler    *UserHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	stockRepo := repos.NewStockRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	stockSvc := services.NewStockService(stockRepo, prodRepo)
	orderSvc := services.NewOrderService(userRepo, prodRepo, orderRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		StockHandler:   &StockHandler{Stock: stockSvc},
		OrderHandler:   &OrderHandler{Orders: orderSvc},
		UserHandler:    &UserHandler{Orders: orderSvc},
	}
}
