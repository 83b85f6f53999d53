package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storemgr/internal/domain"
	applog "storemgr/internal/log"
	"storemgr/internal/services"
	"storemgr/internal/validate"
)

type StockHandler struct {
	Stock *services.StockService
}

type addStockRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (h *StockHandler) Add(c *fiber.Ctx) error {
	var req addStockRequest
	if err := c.BodyParser(&req); err != nil {
		return writeErr(c, "stock.add", domain.Invalid("body", "malformed JSON"))
	}
	if req.ProductID <= 0 {
		return writeErr(c, "stock.add", domain.Invalid("product_id", "must be a positive integer"))
	}

	rows, err := h.Stock.Add(req.ProductID, req.Quantity)
	if err != nil {
		return writeErr(c, "stock.add", err)
	}

	applog.Audit(c, "stock.add", map[string]any{"product_id": req.ProductID, "quantity": req.Quantity})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"result": fiber.Map{"rows": rows}})
}

// Get answers with 201, not 200. Long-standing quirk of the original API
// that downstream clients assert on; do not "fix" without versioning.
func (h *StockHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("product_id"))
	if !ok {
		return writeErr(c, "stock.get", domain.Invalid("product_id", "must be a positive integer"))
	}
	e, err := h.Stock.Get(id)
	if err != nil {
		return writeErr(c, "stock.get", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"product_id": e.ProductID,
		"quantity":   e.Quantity,
	})
}
