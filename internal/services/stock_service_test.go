package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"storemgr/internal/domain"
	"storemgr/internal/repos"
	"storemgr/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStockService_AddAndGet(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	catalog := services.NewCatalogService(prodRepo)
	stock := services.NewStockService(repos.NewStockRepo(db), prodRepo)

	pid, err := catalog.Create("Some Item", "12345", 99.90)
	if err != nil {
		t.Fatal(err)
	}
	if pid <= 0 {
		t.Fatalf("want positive product id, got %d", pid)
	}

	rows, err := stock.Add(pid, 5)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Fatalf("want 1 row affected, got %d", rows)
	}

	e, err := stock.Get(pid)
	if err != nil {
		t.Fatal(err)
	}
	if e.Quantity != 5 {
		t.Fatalf("want quantity 5, got %d", e.Quantity)
	}

	// Second addition increments, not replaces
	if _, err := stock.Add(pid, 3); err != nil {
		t.Fatal(err)
	}
	e, err = stock.Get(pid)
	if err != nil {
		t.Fatal(err)
	}
	if e.Quantity != 8 {
		t.Fatalf("want quantity 8 after second add, got %d", e.Quantity)
	}
}

func TestStockService_AddValidation(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	stock := services.NewStockService(repos.NewStockRepo(db), prodRepo)

	// unknown product
	if _, err := stock.Add(9999, 5); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown product, got %v", err)
	}

	// non-positive quantity
	var ve *domain.ValidationError
	if _, err := stock.Add(1, 0); !errors.As(err, &ve) {
		t.Fatalf("want ValidationError for zero quantity, got %v", err)
	}
}

func TestStockService_GetMissing(t *testing.T) {
	db := memdb(t)
	stock := services.NewStockService(repos.NewStockRepo(db), repos.NewProductRepo(db))

	if _, err := stock.Get(424242); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestStockService_ReserveRelease(t *testing.T) {
	db := memdb(t)
	prodRepo := repos.NewProductRepo(db)
	catalog := services.NewCatalogService(prodRepo)
	stock := services.NewStockService(repos.NewStockRepo(db), prodRepo)

	pid, err := catalog.Create("Widget", "W-1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stock.Add(pid, 4); err != nil {
		t.Fatal(err)
	}

	if err := stock.Reserve(pid, 3); err != nil {
		t.Fatal(err)
	}
	e, _ := stock.Get(pid)
	if e.Quantity != 1 {
		t.Fatalf("want quantity 1 after reserve, got %d", e.Quantity)
	}

	// would go negative
	if err := stock.Reserve(pid, 2); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
	e, _ = stock.Get(pid)
	if e.Quantity != 1 {
		t.Fatalf("failed reserve must not change stock; got %d", e.Quantity)
	}

	if err := stock.Release(pid, 3); err != nil {
		t.Fatal(err)
	}
	e, _ = stock.Get(pid)
	if e.Quantity != 4 {
		t.Fatalf("want quantity 4 after release, got %d", e.Quantity)
	}
}

func TestCatalogService_Validation(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(repos.NewProductRepo(db))

	var ve *domain.ValidationError
	if _, err := catalog.Create("", "sku-1", 10); !errors.As(err, &ve) {
		t.Fatalf("want ValidationError for empty name, got %v", err)
	}
	if _, err := catalog.Create("Thing", "bad sku!", 10); !errors.As(err, &ve) {
		t.Fatalf("want ValidationError for bad sku, got %v", err)
	}
	if _, err := catalog.Create("Thing", "sku-1", 0); !errors.As(err, &ve) {
		t.Fatalf("want ValidationError for non-positive price, got %v", err)
	}
	if _, err := catalog.Get(777); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for ghost product, got %v", err)
	}
}
