package server

import (
	"errors"

	"aiboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetItems handles GET /api/items
func (s *Server) GetItems(c *fiber.Ctx) error {
	items, err := s.itemRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetItem handles GET /api/items/:id
func (s *Server) GetItem(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "item ID")
	if !ok {
		return err
	}

	item, err := s.itemRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, models.NewNotFoundError("Item"))
		}
		return respondError(c, err)
	}

	return c.JSON(item)
}

// CreateItem handles POST /api/items
func (s *Server) CreateItem(c *fiber.Ctx) error {
	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return respondError(c, models.NewValidationError("Name is required"))
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.itemRepo.Create(c.Context(), item); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// DeleteItem handles DELETE /api/items/:id
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "item ID")
	if !ok {
		return err
	}

	if err := s.itemRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, models.NewNotFoundError("Item"))
		}
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
