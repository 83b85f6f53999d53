package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storemgr/internal/domain"
	applog "storemgr/internal/log"
	"storemgr/internal/services"
	"storemgr/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type createProductRequest struct {
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeErr(c, "product.create", domain.Invalid("body", "malformed JSON"))
	}

	id, err := h.Catalog.Create(req.Name, req.SKU, req.Price)
	if err != nil {
		return writeErr(c, "product.create", err)
	}

	applog.Audit(c, "product.create", map[string]any{"product_id": id, "sku": req.SKU})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product_id": id})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return writeErr(c, "product.get", domain.Invalid("id", "must be a positive integer"))
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return writeErr(c, "product.get", err)
	}
	return c.JSON(p)
}
