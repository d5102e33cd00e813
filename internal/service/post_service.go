// Package service contains the business rules between handlers and repositories.
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

// PostService implements the password-gated post operations.
type PostService struct {
	postRepo repository.PostRepository
	hasher   password.Hasher
}

type CreatePostInput struct {
	Title      string
	Content    string
	AuthorName string
	Password   string
}

type UpdatePostInput struct {
	PostID   uint
	Title    string
	Content  string
	Password string
}

func NewPostService(postRepo repository.PostRepository, hasher password.Hasher) *PostService {
	return &PostService{
		postRepo: postRepo,
		hasher:   hasher,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" || in.Password == "" {
		return nil, models.NewValidationError("Title, content and password are required")
	}

	author := in.AuthorName
	if author == "" {
		author = models.DefaultAuthorName
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      in.Title,
		Content:    in.Content,
		AuthorName: author,
		Password:   hashed,
		ViewCount:  0,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns the post and persists a view-count increment. The returned
// record carries the pre-increment count: the store holds count+1 after this
// call but the response reflects the value read on this visit.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, translatePostErr(err)
	}

	if err := s.postRepo.IncrementViewCount(ctx, postID, post.ViewCount); err != nil {
		return nil, err
	}
	observability.PostViews.Inc()

	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" || in.Password == "" {
		return nil, models.NewValidationError("Title, content and password are required")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, translatePostErr(err)
	}

	if !s.verify(in.Password, post.Password) {
		return nil, models.NewForbiddenError("Invalid password")
	}

	now := time.Now()
	if err := s.postRepo.UpdateContent(ctx, post.ID, in.Title, in.Content, now); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	post.UpdatedAt = now
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID uint, plaintext string) error {
	if plaintext == "" {
		return models.NewValidationError("Password is required")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return translatePostErr(err)
	}

	if !s.verify(plaintext, post.Password) {
		return models.NewForbiddenError("Invalid password")
	}

	return s.postRepo.Delete(ctx, postID)
}

// VerifyPassword reports whether the submitted secret matches the stored hash.
// A mismatch is a valid outcome, not an error; only a missing post fails.
func (s *PostService) VerifyPassword(ctx context.Context, postID uint, plaintext string) (bool, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return false, translatePostErr(err)
	}

	return s.verify(plaintext, post.Password), nil
}

func (s *PostService) verify(plaintext, encoded string) bool {
	ok := s.hasher.Verify(plaintext, encoded)
	if ok {
		observability.PasswordChecks.WithLabelValues("ok").Inc()
	} else {
		observability.PasswordChecks.WithLabelValues("mismatch").Inc()
	}
	return ok
}

func translatePostErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Post")
	}
	return err
}
