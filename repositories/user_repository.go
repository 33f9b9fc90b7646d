package repositories

import (
	"context"
	"errors"
	"strings"

	"item-catalog/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	FindAll(ctx context.Context) (*[]models.User, error)
	FindByID(ctx context.Context, userID uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindOrCreate(ctx context.Context, user models.User) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll(ctx context.Context) (*[]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindOrCreate looks a user up by email and inserts one on a miss. The email
// column carries a unique constraint, so two concurrent first-time logins race
// on the insert; the loser hits the duplicate-key error and re-fetches the row
// the winner created. Exactly one user per email either way.
func (r *UserRepository) FindOrCreate(ctx context.Context, user models.User) (*models.User, error) {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	result := r.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return r.FindByEmail(ctx, user.Email)
		}
		return nil, result.Error
	}
	return &user, nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint")
}
