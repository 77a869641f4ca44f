package repository

import (
	"assessment_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) ListAll() ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByID(id uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.DB.First(&result, id).Error
	return &result, err
}
