package service

import (
	"context"
	"errors"
	"time"

	"aiboard/internal/models"
	"aiboard/internal/observability"
	"aiboard/internal/password"
	"aiboard/internal/repository"

	"gorm.io/gorm"
)

// CommentService implements threaded comments under a post. Replies reference
// a parent comment through ParentID; one level of nesting is what the board
// UI renders, and the store does not police depth.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	hasher      password.Hasher
}

type CreateCommentInput struct {
	PostID     uint
	Content    string
	AuthorName string
	Password   string
	ParentID   *uint
}

type UpdateCommentInput struct {
	CommentID uint
	Content   string
	Password  string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, hasher password.Hasher) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		hasher:      hasher,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" || in.Password == "" {
		return nil, models.NewValidationError("Content and password are required")
	}

	// The parent post must exist before we attach anything to it.
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, translatePostErr(err)
	}

	author := in.AuthorName
	if author == "" {
		author = models.DefaultAuthorName
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:     in.PostID,
		ParentID:   in.ParentID,
		Content:    in.Content,
		AuthorName: author,
		Password:   hashed,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListComments returns every comment on the post, oldest first. A post with
// no comments (or no post at all) yields an empty list rather than an error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if in.Content == "" || in.Password == "" {
		return nil, models.NewValidationError("Content and password are required")
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, translateCommentErr(err)
	}

	if !s.verify(in.Password, comment.Password) {
		return nil, models.NewForbiddenError("Invalid password")
	}

	now := time.Now()
	if err := s.commentRepo.UpdateContent(ctx, comment.ID, in.Content, now); err != nil {
		return nil, err
	}

	comment.Content = in.Content
	comment.UpdatedAt = now
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID uint, plaintext string) error {
	if plaintext == "" {
		return models.NewValidationError("Password is required")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return translateCommentErr(err)
	}

	if !s.verify(plaintext, comment.Password) {
		return models.NewForbiddenError("Invalid password")
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *CommentService) verify(plaintext, encoded string) bool {
	ok := s.hasher.Verify(plaintext, encoded)
	if ok {
		observability.PasswordChecks.WithLabelValues("ok").Inc()
	} else {
		observability.PasswordChecks.WithLabelValues("mismatch").Inc()
	}
	return ok
}

func translateCommentErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Comment")
	}
	return err
}
