package model

// swagger:model Question
type Question struct {
	BaseModel
	SectionID      uint     `gorm:"column:section_id;not null;index" json:"sectionId"`
	QuestionText   string   `gorm:"column:question_text;type:text;not null" json:"questionText"`
	QuestionType   string   `gorm:"column:question_type;size:50;default:'single_choice'" json:"questionType"`
	Complexity     string   `gorm:"column:complexity;size:20;default:'medium'" json:"complexity"`
	Marks          int      `gorm:"column:marks;default:1" json:"marks"`
	Explanation    string   `gorm:"column:explanation;type:text" json:"explanation"`
	QuestionOrder  int      `gorm:"column:question_order;default:0" json:"questionOrder"`
	Options        []Option `gorm:"foreignKey:QuestionID" json:"options"`
	CorrectAnswers []uint   `gorm:"-" json:"correctAnswers"`
}

func (Question) TableName() string {
	return "questions"
}

// DeriveCorrectAnswers fills CorrectAnswers from the options flagged correct,
// in option order.
func (q *Question) DeriveCorrectAnswers() {
	q.CorrectAnswers = make([]uint, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.IsCorrect {
			q.CorrectAnswers = append(q.CorrectAnswers, opt.ID)
		}
	}
}

// swagger:model Option
type Option struct {
	BaseModel
	QuestionID  uint   `gorm:"column:question_id;not null;index" json:"questionId"`
	OptionText  string `gorm:"column:option_text;type:text;not null" json:"optionText"`
	IsCorrect   bool   `gorm:"column:is_correct;default:false" json:"isCorrect"`
	OptionOrder int    `gorm:"column:option_order;default:0" json:"optionOrder"`
}

func (Option) TableName() string {
	return "options"
}

// OptionInput is an option as supplied on question creation; the 1-based
// option_order is derived from slice position, never from the input.
type OptionInput struct {
	OptionText string `json:"optionText" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
}

type QuestionUpdate struct {
	QuestionText  *string `json:"questionText"`
	QuestionType  *string `json:"questionType"`
	Complexity    *string `json:"complexity"`
	Marks         *int    `json:"marks"`
	Explanation   *string `json:"explanation"`
	QuestionOrder *int    `json:"questionOrder"`
}

func (u *QuestionUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.QuestionText != nil {
		changes["question_text"] = *u.QuestionText
	}
	if u.QuestionType != nil {
		changes["question_type"] = *u.QuestionType
	}
	if u.Complexity != nil {
		changes["complexity"] = *u.Complexity
	}
	if u.Marks != nil {
		changes["marks"] = *u.Marks
	}
	if u.Explanation != nil {
		changes["explanation"] = *u.Explanation
	}
	if u.QuestionOrder != nil {
		changes["question_order"] = *u.QuestionOrder
	}
	return changes
}
