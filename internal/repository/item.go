// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"aiboard/internal/models"

	"gorm.io/gorm"
)

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	List(ctx context.Context) ([]*models.Item, error)
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) List(ctx context.Context) ([]*models.Item, error) {
	items := make([]*models.Item, 0)
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Delete removes the item by id. Deleting a missing row reports
// gorm.ErrRecordNotFound so callers can map it to a 404.
func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
