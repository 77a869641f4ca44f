package repository

import (
	"assessment_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) ListBySection(sectionID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_order ASC")
		}).
		Where("section_id = ?", sectionID).
		Order("question_order ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// CreateOptions bulk-inserts a question's options. Called after the question
// row insert with no surrounding transaction, so a failure here leaves the
// question row orphaned (see CreateQuestion in the service layer).
func (r *QuestionRepository) CreateOptions(options []model.Option) error {
	if len(options) == 0 {
		return nil
	}
	return r.DB.Create(&options).Error
}

func (r *QuestionRepository) UpdateFields(id uint, changes map[string]interface{}) error {
	return r.DB.Model(&model.Question{}).Where("id = ?", id).Updates(changes).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
