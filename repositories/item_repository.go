package repositories

import (
	"context"

	"item-catalog/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindLatest(ctx context.Context, limit int) (*[]models.Item, error)
	FindByCategory(ctx context.Context, categoryID uint) (*[]models.Item, error)
	FindByID(ctx context.Context, itemID uint) (*models.Item, error)
	FindInCategory(ctx context.Context, categoryID uint, itemID uint) (*models.Item, error)
	Create(ctx context.Context, newItem models.Item) (*models.Item, error)
	Update(ctx context.Context, item models.Item) (*models.Item, error)
	Delete(ctx context.Context, itemID uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindLatest(ctx context.Context, limit int) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindByCategory(ctx context.Context, categoryID uint) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.WithContext(ctx).Order("id").Find(&items, "category_id = ?", categoryID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.WithContext(ctx).First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) FindInCategory(ctx context.Context, categoryID uint, itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.WithContext(ctx).First(&item, "id = ? AND category_id = ?", itemID, categoryID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, newItem models.Item) (*models.Item, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&newItem).Error
	})
	if err != nil {
		return nil, err
	}
	return &newItem, nil
}

func (r *ItemRepository) Update(ctx context.Context, item models.Item) (*models.Item, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Item{}, "id = ?", itemID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
