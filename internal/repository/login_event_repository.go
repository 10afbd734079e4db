package repository

import (
	"fmt"

	"gorm.io/gorm"

	"kosovai-backend/internal/model"
)

type LoginEventRepository struct {
	db *gorm.DB
}

func NewLoginEventRepository(db *gorm.DB) *LoginEventRepository {
	return &LoginEventRepository{db: db}
}

func (r *LoginEventRepository) Create(event *model.LoginEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create login event failed: %w", err)
	}
	return nil
}

func (r *LoginEventRepository) ListRecentByUsername(username string, limit int) ([]model.LoginEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var events []model.LoginEvent
	if err := r.db.Where("username = ?", username).Order("created_at DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list login events failed: %w", err)
	}
	return events, nil
}
