package services

import (
	"context"
	"testing"

	"item-catalog/dto"
	"item-catalog/models"
	"item-catalog/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCatalog(t *testing.T) (ICatalogService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	service := NewCatalogService(
		repositories.NewCategoryRepository(db),
		repositories.NewItemRepository(db),
		repositories.NewUserRepository(db),
	)
	return service, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "User " + email, Email: email}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()
	category := models.Category{Name: "Sports", Description: "Sporting goods"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func TestCreateItemSetsOwnerAndCategory(t *testing.T) {
	service, db := newTestCatalog(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	category := seedCategory(t, db)

	item, err := service.CreateItem(ctx, category.ID, owner.ID, dto.EntryInput{Name: "Ball", Description: "Round"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, item.UserID)
	assert.Equal(t, category.ID, item.CategoryID)

	// The new item is immediately visible in the category's item list.
	_, items, err := service.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, *items, 1)
	assert.Equal(t, item.ID, (*items)[0].ID)
}

func TestCreateItemValidation(t *testing.T) {
	service, db := newTestCatalog(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	category := seedCategory(t, db)

	tests := []struct {
		name  string
		input dto.EntryInput
	}{
		{"missing name", dto.EntryInput{Description: "Round"}},
		{"missing description", dto.EntryInput{Name: "Ball"}},
		{"blank name", dto.EntryInput{Name: "   ", Description: "Round"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateItem(ctx, category.ID, owner.ID, tt.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// No partial writes happened.
	var count int64
	db.Model(&models.Item{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateItemInMissingCategory(t *testing.T) {
	service, db := newTestCatalog(t)
	owner := seedUser(t, db, "owner@example.com")

	_, err := service.CreateItem(context.Background(), 999, owner.ID, dto.EntryInput{Name: "Ball", Description: "Round"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemOwnerOnly(t *testing.T) {
	service, db := newTestCatalog(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	category := seedCategory(t, db)

	item, err := service.CreateItem(ctx, category.ID, owner.ID, dto.EntryInput{Name: "Ball", Description: "Round"})
	require.NoError(t, err)

	_, err = service.UpdateItem(ctx, category.ID, item.ID, other.ID, dto.EntryInput{Name: "Stolen", Description: "Mine now"})
	assert.ErrorIs(t, err, ErrForbidden)

	// Unchanged after the forbidden attempt.
	unchanged, err := service.GetItem(ctx, category.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ball", unchanged.Name)

	updated, err := service.UpdateItem(ctx, category.ID, item.ID, owner.ID, dto.EntryInput{Name: "Bat", Description: "Wooden"})
	require.NoError(t, err)
	assert.Equal(t, "Bat", updated.Name)
}

func TestDeleteItemOwnerOnly(t *testing.T) {
	service, db := newTestCatalog(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	category := seedCategory(t, db)

	item, err := service.CreateItem(ctx, category.ID, owner.ID, dto.EntryInput{Name: "Ball", Description: "Round"})
	require.NoError(t, err)

	err = service.DeleteItem(ctx, category.ID, item.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = service.GetItem(ctx, category.ID, item.ID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteItem(ctx, category.ID, item.ID, owner.ID))

	_, err = service.GetItem(ctx, category.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCategoryCascades(t *testing.T) {
	service, db := newTestCatalog(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	category := seedCategory(t, db)

	first, err := service.CreateItem(ctx, category.ID, owner.ID, dto.EntryInput{Name: "Ball", Description: "Round"})
	require.NoError(t, err)
	second, err := service.CreateItem(ctx, category.ID, owner.ID, dto.EntryInput{Name: "Bat", Description: "Wooden"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCategory(ctx, category.ID))

	_, _, err = service.GetCategory(ctx, category.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetItemByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetItemByID(ctx, second.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnyAuthenticatedUserMayEditCategories(t *testing.T) {
	// Categories carry no owner column; the service takes no user id for
	// category mutations at all.
	service, db := newTestCatalog(t)
	ctx := context.Background()
	category := seedCategory(t, db)

	updated, err := service.UpdateCategory(ctx, category.ID, dto.EntryInput{Name: "Outdoors", Description: "Outdoor goods"})
	require.NoError(t, err)
	assert.Equal(t, "Outdoors", updated.Name)
}

func TestGetItemScopedToCategory(t *testing.T) {
	service, db := newTestCatalog(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	category := seedCategory(t, db)
	otherCategory := models.Category{Name: "Music", Description: "Instruments"}
	require.NoError(t, db.Create(&otherCategory).Error)

	item, err := service.CreateItem(ctx, category.ID, owner.ID, dto.EntryInput{Name: "Ball", Description: "Round"})
	require.NoError(t, err)

	_, err = service.GetItem(ctx, otherCategory.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedReturnsLatestTen(t *testing.T) {
	service, db := newTestCatalog(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	category := seedCategory(t, db)

	for i := 0; i < 12; i++ {
		_, err := service.CreateItem(ctx, category.ID, owner.ID, dto.EntryInput{Name: "Item", Description: "D"})
		require.NoError(t, err)
	}

	latest, categories, err := service.Feed(ctx)
	require.NoError(t, err)
	assert.Len(t, *latest, 10)
	assert.Len(t, *categories, 1)
	// Newest first.
	assert.Greater(t, (*latest)[0].ID, (*latest)[9].ID)
}
