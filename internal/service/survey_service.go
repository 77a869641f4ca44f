package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SurveyService struct {
	Surveys *repository.SurveyRepository
}

func NewSurveyService(surveys *repository.SurveyRepository) *SurveyService {
	return &SurveyService{Surveys: surveys}
}

type CreateSurveyInput struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	TargetDate      *time.Time `json:"targetDate"`
	DurationMinutes int        `json:"durationMinutes"`
	TotalQuestions  int        `json:"totalQuestions"`
	PassingScore    int        `json:"passingScore"`
	MaxAttempts     int        `json:"maxAttempts"`
	CreatedBy       uint       `json:"createdBy"`
}

type CreateSectionInput struct {
	SurveyID     uint   `json:"surveyId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	SectionOrder int    `json:"sectionOrder"`
}

// ListSurveys returns surveys newest first. Sections are never auto-loaded:
// every returned survey carries an empty sections slice and children come from
// an explicit ListSections call.
func (s *SurveyService) ListSurveys() util.Result[[]model.Survey] {
	if s.Surveys == nil {
		return util.Ok([]model.Survey{}, util.MsgDemoMode)
	}

	surveys, err := s.Surveys.List()
	if err != nil {
		logger.Log.Error("failed to list surveys", zap.Error(err))
		return util.FailList[model.Survey]("Failed to fetch surveys")
	}
	for i := range surveys {
		surveys[i].Sections = []model.Section{}
	}
	return util.Ok(surveys, "Surveys fetched")
}

func (s *SurveyService) CreateSurvey(input CreateSurveyInput) util.Result[model.Survey] {
	if s.Surveys == nil {
		return util.Fail[model.Survey](util.MsgNotConfigured)
	}

	survey := model.Survey{
		Title:           input.Title,
		Description:     input.Description,
		TargetDate:      input.TargetDate,
		DurationMinutes: input.DurationMinutes,
		TotalQuestions:  input.TotalQuestions,
		PassingScore:    input.PassingScore,
		MaxAttempts:     input.MaxAttempts,
		IsActive:        true,
		CreatedBy:       input.CreatedBy,
		Sections:        []model.Section{},
	}
	if survey.DurationMinutes == 0 {
		survey.DurationMinutes = 60
	}
	if survey.MaxAttempts == 0 {
		survey.MaxAttempts = 1
	}
	if err := s.Surveys.Create(&survey); err != nil {
		logger.Log.Error("failed to create survey", zap.String("title", input.Title), zap.Error(err))
		return util.Fail[model.Survey]("Failed to create survey")
	}
	return util.Ok(survey, "Survey created")
}

func (s *SurveyService) UpdateSurvey(id uint, update *model.SurveyUpdate) util.Result[model.Survey] {
	if s.Surveys == nil {
		return util.Fail[model.Survey](util.MsgNotConfigured)
	}

	changes := update.Changes()
	if len(changes) > 0 {
		if err := s.Surveys.UpdateFields(id, changes); err != nil {
			logger.Log.Error("failed to update survey", zap.Uint("id", id), zap.Error(err))
			return util.Fail[model.Survey]("Failed to update survey")
		}
	}

	survey, err := s.Surveys.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[model.Survey]("Survey not found")
		}
		logger.Log.Error("failed to reload survey", zap.Uint("id", id), zap.Error(err))
		return util.Fail[model.Survey]("Failed to update survey")
	}
	survey.Sections = []model.Section{}
	return util.Ok(*survey, "Survey updated")
}

func (s *SurveyService) DeleteSurvey(id uint) util.Result[struct{}] {
	if s.Surveys == nil {
		return util.Fail[struct{}](util.MsgNotConfigured)
	}

	if err := s.Surveys.Delete(id); err != nil {
		logger.Log.Error("failed to delete survey", zap.Uint("id", id), zap.Error(err))
		return util.Fail[struct{}]("Failed to delete survey")
	}
	return util.Done("Survey deleted")
}

func (s *SurveyService) ListSections(surveyID uint) util.Result[[]model.Section] {
	if s.Surveys == nil {
		return util.Ok([]model.Section{}, util.MsgDemoMode)
	}

	sections, err := s.Surveys.ListSections(surveyID)
	if err != nil {
		logger.Log.Error("failed to list sections", zap.Uint("surveyId", surveyID), zap.Error(err))
		return util.FailList[model.Section]("Failed to fetch sections")
	}
	for i := range sections {
		sections[i].Questions = []model.Question{}
	}
	return util.Ok(sections, "Sections fetched")
}

func (s *SurveyService) CreateSection(input CreateSectionInput) util.Result[model.Section] {
	if s.Surveys == nil {
		return util.Fail[model.Section](util.MsgNotConfigured)
	}

	section := model.Section{
		SurveyID:     input.SurveyID,
		Title:        input.Title,
		Description:  input.Description,
		SectionOrder: input.SectionOrder,
		Questions:    []model.Question{},
	}
	if err := s.Surveys.CreateSection(&section); err != nil {
		logger.Log.Error("failed to create section", zap.Uint("surveyId", input.SurveyID), zap.Error(err))
		return util.Fail[model.Section]("Failed to create section")
	}
	return util.Ok(section, "Section created")
}

func (s *SurveyService) UpdateSection(id uint, update *model.SectionUpdate) util.Result[struct{}] {
	if s.Surveys == nil {
		return util.Fail[struct{}](util.MsgNotConfigured)
	}

	changes := update.Changes()
	if len(changes) == 0 {
		return util.Done("Nothing to update")
	}
	if err := s.Surveys.UpdateSection(id, changes); err != nil {
		logger.Log.Error("failed to update section", zap.Uint("id", id), zap.Error(err))
		return util.Fail[struct{}]("Failed to update section")
	}
	return util.Done("Section updated")
}

func (s *SurveyService) DeleteSection(id uint) util.Result[struct{}] {
	if s.Surveys == nil {
		return util.Fail[struct{}](util.MsgNotConfigured)
	}

	if err := s.Surveys.DeleteSection(id); err != nil {
		logger.Log.Error("failed to delete section", zap.Uint("id", id), zap.Error(err))
		return util.Fail[struct{}]("Failed to delete section")
	}
	return util.Done("Section deleted")
}
