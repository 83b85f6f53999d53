package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storemgr/internal/domain"
	applog "storemgr/internal/log"
	"storemgr/internal/services"
	"storemgr/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type placeOrderRequest struct {
	UserID int64 `json:"user_id"`
	Items  []struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	} `json:"items"`
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return writeErr(c, "order.place", domain.Invalid("body", "malformed JSON"))
	}
	if req.UserID <= 0 {
		return writeErr(c, "order.place", domain.Invalid("user_id", "must be a positive integer"))
	}

	lines := make([]services.Line, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	placed, err := h.Orders.Place(req.UserID, lines)
	if err != nil {
		return writeErr(c, "order.place", err)
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id":  placed.OrderID,
		"reference": placed.Reference,
		"user_id":   req.UserID,
		"total":     placed.Total,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order_id":  placed.OrderID,
		"reference": placed.Reference,
		"total":     placed.Total,
	})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return writeErr(c, "order.get", domain.Invalid("id", "must be a positive integer"))
	}
	o, items, err := h.Orders.Get(id)
	if err != nil {
		return writeErr(c, "order.get", err)
	}
	return c.JSON(fiber.Map{
		"order_id":   o.ID,
		"reference":  o.Reference,
		"user_id":    o.UserID,
		"total":      o.Total,
		"created_at": o.CreatedAt,
		"items":      items,
	})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return writeErr(c, "order.delete", domain.Invalid("id", "must be a positive integer"))
	}
	if err := h.Orders.Delete(id); err != nil {
		return writeErr(c, "order.delete", err)
	}

	applog.Audit(c, "order.delete", map[string]any{"order_id": id})
	return c.JSON(fiber.Map{"deleted": true})
}
