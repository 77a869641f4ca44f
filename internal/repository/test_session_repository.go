package repository

import (
	"assessment_backend/internal/model"

	"gorm.io/gorm"
)

type TestSessionRepository struct {
	DB *gorm.DB
}

func NewTestSessionRepository(db *gorm.DB) *TestSessionRepository {
	return &TestSessionRepository{DB: db}
}

func (r *TestSessionRepository) FindByID(id uint) (*model.TestSession, error) {
	var session model.TestSession
	err := r.DB.First(&session, id).Error
	return &session, err
}

func (r *TestSessionRepository) ListByUser(userID uint) ([]model.TestSession, error) {
	var sessions []model.TestSession
	err := r.DB.Where("user_id = ?", userID).Order("start_time DESC").Find(&sessions).Error
	return sessions, err
}
