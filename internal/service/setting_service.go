package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SettingService struct {
	Settings *repository.SettingRepository
}

func NewSettingService(settings *repository.SettingRepository) *SettingService {
	return &SettingService{Settings: settings}
}

func (s *SettingService) ListSettings() util.Result[[]model.SystemSetting] {
	if s.Settings == nil {
		return util.Ok([]model.SystemSetting{}, util.MsgDemoMode)
	}

	settings, err := s.Settings.List()
	if err != nil {
		logger.Log.Error("failed to list settings", zap.Error(err))
		return util.FailList[model.SystemSetting]("Failed to fetch settings")
	}
	return util.Ok(settings, "Settings fetched")
}

func (s *SettingService) ListByCategory(category string) util.Result[[]model.SystemSetting] {
	if s.Settings == nil {
		return util.Ok([]model.SystemSetting{}, util.MsgDemoMode)
	}

	settings, err := s.Settings.ListByCategory(category)
	if err != nil {
		logger.Log.Error("failed to list settings", zap.String("category", category), zap.Error(err))
		return util.FailList[model.SystemSetting]("Failed to fetch settings")
	}
	return util.Ok(settings, "Settings fetched")
}

// UpdateSetting changes one setting's value, stamping the editor. Values are
// opaque strings; only editability is enforced here, declared types and
// allowed values are a rendering contract for the frontend.
func (s *SettingService) UpdateSetting(key, value, editor string) util.Result[model.SystemSetting] {
	if s.Settings == nil {
		return util.Fail[model.SystemSetting](util.MsgNotConfigured)
	}

	setting, err := s.Settings.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[model.SystemSetting]("Setting not found")
		}
		logger.Log.Error("failed to fetch setting", zap.String("key", key), zap.Error(err))
		return util.Fail[model.SystemSetting]("Failed to update setting")
	}
	if !setting.IsEditable {
		return util.Fail[model.SystemSetting]("Setting is not editable")
	}

	if err := s.Settings.UpdateValue(key, value, editor); err != nil {
		logger.Log.Error("failed to update setting", zap.String("key", key), zap.Error(err))
		return util.Fail[model.SystemSetting]("Failed to update setting")
	}

	setting.SettingValue = value
	setting.UpdatedBy = editor
	return util.Ok(*setting, "Setting updated")
}
