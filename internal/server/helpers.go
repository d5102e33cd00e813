package server

import (
	"aiboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive integer path parameter. A malformed value is a
// client error written immediately; the bool tells the handler to bail.
func parseID(c *fiber.Ctx, name, label string) (uint, bool, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, false, models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Invalid "+label))
	}
	return uint(id), true, nil
}

// respondError writes err with the status its code maps to.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusFor(err), err)
}
