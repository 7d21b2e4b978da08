package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) ListEnabled() ([]model.BadgeRule, error) {
	var rules []model.BadgeRule
	err := r.DB.Where("enabled = ?", true).Order("kind, threshold ASC").Find(&rules).Error
	return rules, err
}
