package services

import (
	"context"
	"errors"
	"strings"

	"item-catalog/dto"
	"item-catalog/models"
	"item-catalog/repositories"

	"gorm.io/gorm"
)

const feedSize = 10

type ICatalogService interface {
	Feed(ctx context.Context) (*[]models.Item, *[]models.Category, error)
	ListUsers(ctx context.Context) (*[]models.User, error)
	ListCategories(ctx context.Context) (*[]models.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (*models.Category, *[]models.Item, error)
	CreateCategory(ctx context.Context, input dto.EntryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint, input dto.EntryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint) error
	GetItem(ctx context.Context, categoryID uint, itemID uint) (*models.Item, error)
	GetItemByID(ctx context.Context, itemID uint) (*models.Item, error)
	CreateItem(ctx context.Context, categoryID uint, userID uint, input dto.EntryInput) (*models.Item, error)
	UpdateItem(ctx context.Context, categoryID uint, itemID uint, userID uint, input dto.EntryInput) (*models.Item, error)
	DeleteItem(ctx context.Context, categoryID uint, itemID uint, userID uint) error
}

type CatalogService struct {
	categoryRepository repositories.ICategoryRepository
	itemRepository     repositories.IItemRepository
	userRepository     repositories.IUserRepository
}

func NewCatalogService(
	categoryRepository repositories.ICategoryRepository,
	itemRepository repositories.IItemRepository,
	userRepository repositories.IUserRepository,
) ICatalogService {
	return &CatalogService{
		categoryRepository: categoryRepository,
		itemRepository:     itemRepository,
		userRepository:     userRepository,
	}
}

func (s *CatalogService) Feed(ctx context.Context) (*[]models.Item, *[]models.Category, error) {
	latest, err := s.itemRepository.FindLatest(ctx, feedSize)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.categoryRepository.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return latest, categories, nil
}

func (s *CatalogService) ListUsers(ctx context.Context) (*[]models.User, error) {
	return s.userRepository.FindAll(ctx)
}

func (s *CatalogService) ListCategories(ctx context.Context) (*[]models.Category, error) {
	return s.categoryRepository.FindAll(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, categoryID uint) (*models.Category, *[]models.Item, error) {
	category, err := s.categoryRepository.FindByID(ctx, categoryID)
	if err != nil {
		return nil, nil, notFoundOr(err)
	}
	items, err := s.itemRepository.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	return category, items, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, input dto.EntryInput) (*models.Category, error) {
	if err := validateEntry(input); err != nil {
		return nil, err
	}
	return s.categoryRepository.Create(ctx, models.Category{
		Name:        input.Name,
		Description: input.Description,
	})
}

// UpdateCategory is open to any authenticated user; categories carry no
// owner column. Items are the only owner-scoped entity.
func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID uint, input dto.EntryInput) (*models.Category, error) {
	category, err := s.categoryRepository.FindByID(ctx, categoryID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if err := validateEntry(input); err != nil {
		return nil, err
	}
	category.Name = input.Name
	category.Description = input.Description
	return s.categoryRepository.Update(ctx, *category)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepository.FindByID(ctx, categoryID); err != nil {
		return notFoundOr(err)
	}
	return s.categoryRepository.Delete(ctx, categoryID)
}

func (s *CatalogService) GetItem(ctx context.Context, categoryID uint, itemID uint) (*models.Item, error) {
	item, err := s.itemRepository.FindInCategory(ctx, categoryID, itemID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return item, nil
}

func (s *CatalogService) GetItemByID(ctx context.Context, itemID uint) (*models.Item, error) {
	item, err := s.itemRepository.FindByID(ctx, itemID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return item, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, categoryID uint, userID uint, input dto.EntryInput) (*models.Item, error) {
	if _, err := s.categoryRepository.FindByID(ctx, categoryID); err != nil {
		return nil, notFoundOr(err)
	}
	if err := validateEntry(input); err != nil {
		return nil, err
	}
	return s.itemRepository.Create(ctx, models.Item{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  categoryID,
		UserID:      userID,
	})
}

func (s *CatalogService) UpdateItem(ctx context.Context, categoryID uint, itemID uint, userID uint, input dto.EntryInput) (*models.Item, error) {
	item, err := s.itemRepository.FindInCategory(ctx, categoryID, itemID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}
	if err := validateEntry(input); err != nil {
		return nil, err
	}
	item.Name = input.Name
	item.Description = input.Description
	return s.itemRepository.Update(ctx, *item)
}

func (s *CatalogService) DeleteItem(ctx context.Context, categoryID uint, itemID uint, userID uint) error {
	item, err := s.itemRepository.FindInCategory(ctx, categoryID, itemID)
	if err != nil {
		return notFoundOr(err)
	}
	if item.UserID != userID {
		return ErrForbidden
	}
	return s.itemRepository.Delete(ctx, itemID)
}

func validateEntry(input dto.EntryInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return ErrValidation
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
