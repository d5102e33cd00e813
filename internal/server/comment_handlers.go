package server

import (
	"aiboard/internal/models"
	"aiboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, ok, err := parseID(c, "id", "post ID")
	if !ok {
		return err
	}

	comments, err := s.commentSvc.ListComments(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, ok, err := parseID(c, "id", "post ID")
	if !ok {
		return err
	}

	var req struct {
		Content    string `json:"content"`
		AuthorName string `json:"author_name"`
		Password   string `json:"password"`
		ParentID   *uint  `json:"parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentSvc.CreateComment(c.Context(), service.CreateCommentInput{
		PostID:     postID,
		Content:    req.Content,
		AuthorName: req.AuthorName,
		Password:   req.Password,
		ParentID:   req.ParentID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, ok, err := parseID(c, "id", "comment ID")
	if !ok {
		return err
	}

	var req struct {
		Content  string `json:"content"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentSvc.UpdateComment(c.Context(), service.UpdateCommentInput{
		CommentID: commentID,
		Content:   req.Content,
		Password:  req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, ok, err := parseID(c, "id", "comment ID")
	if !ok {
		return err
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if err := s.commentSvc.DeleteComment(c.Context(), commentID, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
