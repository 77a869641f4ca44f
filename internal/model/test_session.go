package model

import "time"

// SessionStatus enumerates the known test session states. The backend is the
// source of truth: an unknown status string is carried through untouched rather
// than rejected, so new states introduced upstream do not break session reads.
type SessionStatus string

const (
	SessionNotStarted SessionStatus = "not_started"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionExpired    SessionStatus = "expired"
)

// swagger:model TestSession
type TestSession struct {
	BaseModel
	UserID          uint          `gorm:"column:user_id;not null;index" json:"userId"`
	SurveyID        uint          `gorm:"column:survey_id;not null;index" json:"surveyId"`
	StartTime       *time.Time    `gorm:"column:start_time" json:"startTime,omitempty"`
	RemainingTime   int           `gorm:"column:remaining_time;default:0" json:"remainingTime"`
	CurrentQuestion int           `gorm:"column:current_question;default:0" json:"currentQuestion"`
	Status          SessionStatus `gorm:"column:status;size:30;default:'not_started'" json:"status"`
	AttemptNumber   int           `gorm:"column:attempt_number;default:1" json:"attemptNumber"`
	Answers         []TestAnswer  `gorm:"-" json:"answers"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}

// swagger:model TestAnswer
type TestAnswer struct {
	BaseModel
	SessionID       uint       `gorm:"column:session_id;not null;index" json:"sessionId"`
	QuestionID      uint       `gorm:"column:question_id;not null" json:"questionId"`
	SelectedOptions StringList `gorm:"column:selected_options;type:text" json:"selectedOptions"`
	IsCorrect       bool       `gorm:"column:is_correct;default:false" json:"isCorrect"`
}

func (TestAnswer) TableName() string {
	return "test_answers"
}

// TestResult is a completed attempt's outcome, the raw material of dashboard
// aggregation.
//
// swagger:model TestResult
type TestResult struct {
	BaseModel
	UserID      uint       `gorm:"column:user_id;not null;index" json:"userId"`
	SurveyID    uint       `gorm:"column:survey_id;not null;index" json:"surveyId"`
	SessionID   uint       `gorm:"column:session_id;index" json:"sessionId"`
	Score       float64    `gorm:"column:score;default:0" json:"score"`
	IsPassed    bool       `gorm:"column:is_passed;default:false" json:"isPassed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`
}

func (TestResult) TableName() string {
	return "test_results"
}
