package server

import (
	"aiboard/internal/models"
	"aiboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postSvc.ListPosts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id. Every hit counts as a view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "post ID")
	if !ok {
		return err
	}

	post, err := s.postSvc.GetPost(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		AuthorName string `json:"author_name"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postSvc.CreatePost(c.Context(), service.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorName: req.AuthorName,
		Password:   req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "post ID")
	if !ok {
		return err
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postSvc.UpdatePost(c.Context(), service.UpdatePostInput{
		PostID:   id,
		Title:    req.Title,
		Content:  req.Content,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. The password travels in the body.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "post ID")
	if !ok {
		return err
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if err := s.postSvc.DeletePost(c.Context(), id, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyPostPassword handles POST /api/posts/:id/verify-password. A mismatch
// is reported in the body, not as an HTTP error.
func (s *Server) VerifyPostPassword(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "post ID")
	if !ok {
		return err
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	valid, err := s.postSvc.VerifyPassword(c.Context(), id, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"valid": valid})
}
