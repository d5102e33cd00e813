package repository

import (
	"context"
	"time"

	"aiboard/internal/cache"
	"aiboard/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	UpdateContent(ctx context.Context, id uint, title, content string, updatedAt time.Time) error
	IncrementViewCount(ctx context.Context, id uint, current int) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts newest first. The listing is served cache-aside from
// Redis; mutations invalidate it.
func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	posts := make([]*models.Post, 0)
	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateContent writes only title, content and updated_at. Author name,
// password, view count and created_at are immutable through this path.
func (r *postRepository) UpdateContent(ctx context.Context, id uint, title, content string, updatedAt time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": updatedAt,
		}).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}

// IncrementViewCount persists current+1 for the post. This is a deliberate
// read-then-write, not an atomic expression: concurrent detail reads may lose
// an increment. UpdateColumn keeps updated_at untouched.
func (r *postRepository) IncrementViewCount(ctx context.Context, id uint, current int) error {
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", current+1).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}
