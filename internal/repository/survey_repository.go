package repository

import (
	"assessment_backend/internal/model"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

func (r *SurveyRepository) List() ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.DB.Order("created_at DESC").Find(&surveys).Error
	return surveys, err
}

func (r *SurveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.DB.First(&survey, id).Error
	return &survey, err
}

func (r *SurveyRepository) Create(survey *model.Survey) error {
	return r.DB.Create(survey).Error
}

func (r *SurveyRepository) UpdateFields(id uint, changes map[string]interface{}) error {
	return r.DB.Model(&model.Survey{}).Where("id = ?", id).Updates(changes).Error
}

func (r *SurveyRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Survey{}, id).Error
}

func (r *SurveyRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Survey{}).Count(&count).Error
	return count, err
}

func (r *SurveyRepository) ListSections(surveyID uint) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Where("survey_id = ?", surveyID).Order("section_order ASC").Find(&sections).Error
	return sections, err
}

func (r *SurveyRepository) CreateSection(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SurveyRepository) UpdateSection(id uint, changes map[string]interface{}) error {
	return r.DB.Model(&model.Section{}).Where("id = ?", id).Updates(changes).Error
}

func (r *SurveyRepository) DeleteSection(id uint) error {
	return r.DB.Delete(&model.Section{}, id).Error
}
