package model

import "time"

// Survey is an authored assessment. Sections are lazily populated: a survey
// fetched on its own always carries an empty (non-nil) Sections slice, children
// are only loaded by an explicit section listing.
//
// swagger:model Survey
type Survey struct {
	BaseModel
	Title           string     `gorm:"column:title;size:255;not null" json:"title"`
	Description     string     `gorm:"column:description;type:text" json:"description"`
	TargetDate      *time.Time `gorm:"column:target_date" json:"targetDate,omitempty"`
	DurationMinutes int        `gorm:"column:duration_minutes;default:60" json:"durationMinutes"`
	TotalQuestions  int        `gorm:"column:total_questions;default:0" json:"totalQuestions"`
	PassingScore    int        `gorm:"column:passing_score;default:60" json:"passingScore"`
	MaxAttempts     int        `gorm:"column:max_attempts;default:1" json:"maxAttempts"`
	IsActive        bool       `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedBy       uint       `gorm:"column:created_by" json:"createdBy"`
	Sections        []Section  `gorm:"-" json:"sections"`
}

func (Survey) TableName() string {
	return "surveys"
}

// swagger:model Section
type Section struct {
	BaseModel
	SurveyID      uint       `gorm:"column:survey_id;not null;index" json:"surveyId"`
	Title         string     `gorm:"column:title;size:255;not null" json:"title"`
	Description   string     `gorm:"column:description;type:text" json:"description"`
	QuestionCount int        `gorm:"column:question_count;default:0" json:"questionCount"`
	SectionOrder  int        `gorm:"column:section_order;default:0" json:"sectionOrder"`
	Questions     []Question `gorm:"-" json:"questions"`
}

func (Section) TableName() string {
	return "sections"
}

type SurveyUpdate struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	TargetDate      *time.Time `json:"targetDate"`
	DurationMinutes *int       `json:"durationMinutes"`
	TotalQuestions  *int       `json:"totalQuestions"`
	PassingScore    *int       `json:"passingScore"`
	MaxAttempts     *int       `json:"maxAttempts"`
	IsActive        *bool      `json:"isActive"`
}

func (u *SurveyUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.TargetDate != nil {
		changes["target_date"] = *u.TargetDate
	}
	if u.DurationMinutes != nil {
		changes["duration_minutes"] = *u.DurationMinutes
	}
	if u.TotalQuestions != nil {
		changes["total_questions"] = *u.TotalQuestions
	}
	if u.PassingScore != nil {
		changes["passing_score"] = *u.PassingScore
	}
	if u.MaxAttempts != nil {
		changes["max_attempts"] = *u.MaxAttempts
	}
	if u.IsActive != nil {
		changes["is_active"] = *u.IsActive
	}
	return changes
}

type SectionUpdate struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	QuestionCount *int    `json:"questionCount"`
	SectionOrder  *int    `json:"sectionOrder"`
}

func (u *SectionUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.QuestionCount != nil {
		changes["question_count"] = *u.QuestionCount
	}
	if u.SectionOrder != nil {
		changes["section_order"] = *u.SectionOrder
	}
	return changes
}
