package service

import (
	"assessment_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Option order always comes from slice position, 1-based.
func TestBuildOptions(t *testing.T) {
	inputs := []model.OptionInput{
		{OptionText: "Paris", IsCorrect: true},
		{OptionText: "London"},
		{OptionText: "Berlin"},
	}

	options := BuildOptions(42, inputs)

	assert.Len(t, options, 3)
	for i, opt := range options {
		assert.Equal(t, uint(42), opt.QuestionID)
		assert.Equal(t, i+1, opt.OptionOrder)
		assert.Equal(t, inputs[i].OptionText, opt.OptionText)
		assert.Equal(t, inputs[i].IsCorrect, opt.IsCorrect)
	}
}

func TestBuildOptionsEmpty(t *testing.T) {
	options := BuildOptions(1, nil)
	assert.NotNil(t, options)
	assert.Empty(t, options)
}
