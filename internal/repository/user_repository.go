package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kosovai-backend/internal/model"
)

// ErrUsernameTaken is returned when a create hits the unique index on
// username.
var ErrUsernameTaken = errors.New("username already exists")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

// GetByUsername returns (nil, nil) when no user matches. Usernames are
// matched case-sensitively via a BINARY comparison.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("BINARY username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}
