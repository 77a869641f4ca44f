package repository

import (
	"assessment_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) List() ([]model.SystemSetting, error) {
	var settings []model.SystemSetting
	err := r.DB.Order("category ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingRepository) ListByCategory(category string) ([]model.SystemSetting, error) {
	var settings []model.SystemSetting
	err := r.DB.Where("category = ?", category).Order("setting_key ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingRepository) FindByKey(key string) (*model.SystemSetting, error) {
	var setting model.SystemSetting
	err := r.DB.Where("setting_key = ?", key).First(&setting).Error
	return &setting, err
}

func (r *SettingRepository) UpdateValue(key, value, editor string) error {
	return r.DB.Model(&model.SystemSetting{}).
		Where("setting_key = ?", key).
		Updates(map[string]interface{}{
			"setting_value": value,
			"updated_by":    editor,
			"updated_at":    time.Now(),
		}).Error
}
