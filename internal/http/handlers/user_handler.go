package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storemgr/internal/domain"
	"storemgr/internal/services"
	"storemgr/internal/validate"
)

type UserHandler struct {
	Orders *services.OrderService
}

// Get answers with 201 for compatibility with the original API (see the
// matching note on StockHandler.Get).
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("user_id"))
	if !ok {
		return writeErr(c, "user.get", domain.Invalid("user_id", "must be a positive integer"))
	}
	u, err := h.Orders.GetUser(id)
	if err != nil {
		return writeErr(c, "user.get", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"name":  u.Name,
		"email": u.Email,
	})
}
