package repositories

import (
	"context"

	"item-catalog/models"

	"gorm.io/gorm"
)

type ICategoryRepository interface {
	FindAll(ctx context.Context) (*[]models.Category, error)
	FindByID(ctx context.Context, categoryID uint) (*models.Category, error)
	Create(ctx context.Context, newCategory models.Category) (*models.Category, error)
	Update(ctx context.Context, category models.Category) (*models.Category, error)
	Delete(ctx context.Context, categoryID uint) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) (*[]models.Category, error) {
	var categories []models.Category
	result := r.db.WithContext(ctx).Order("id").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return &categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID uint) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).First(&category, "id = ?", categoryID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, newCategory models.Category) (*models.Category, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&newCategory).Error
	})
	if err != nil {
		return nil, err
	}
	return &newCategory, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category models.Category) (*models.Category, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category and every item that references it in one
// transaction, so a failure never leaves orphaned items behind.
func (r *CategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Item{}, "category_id = ?", categoryID)
		if result.Error != nil {
			return result.Error
		}
		result = tx.Delete(&models.Category{}, "id = ?", categoryID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
