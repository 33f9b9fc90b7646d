package repositories

import (
	"context"
	"fmt"
	"testing"

	"item-catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Item{}))
	return db
}

func TestFindOrCreateInsertsOnMiss(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.FindOrCreate(ctx, models.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestFindOrCreateIsIdempotentPerEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, models.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	second, err := repo.FindOrCreate(ctx, models.User{Name: "Ada Again", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

// The email column is unique, so a lost insert race surfaces as a
// duplicate-key error and FindOrCreate re-fetches the winner. Verify the
// constraint fires and that the error is recognized.
func TestFindOrCreateDuplicateKeyRecovery(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	winner, err := repo.FindOrCreate(ctx, models.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	// Simulate the loser's insert hitting the constraint directly.
	result := db.Create(&models.User{Name: "Ada Clone", Email: "ada@example.com"})
	require.Error(t, result.Error)
	assert.True(t, isDuplicateKeyError(result.Error))

	// The loser's FindOrCreate resolves to the winner's row.
	loser, err := repo.FindOrCreate(ctx, models.User{Name: "Ada Clone", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, loser.ID)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestFindByEmailMiss(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
