package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storemgr/internal/domain"
	applog "storemgr/internal/log"
)

// writeErr maps domain errors onto the documented status codes:
// ValidationError -> 400, ErrNotFound -> 404, ErrInsufficientStock -> 409.
// Anything else is a 500 with the detail kept out of the response body.
func writeErr(c *fiber.Ctx, action string, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		applog.Security(c, action+".invalid", map[string]any{"field": ve.Field})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		applog.Info(c, action+".rejected", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		applog.Error(c, action+".fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
