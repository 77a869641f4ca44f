package service

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/model"
	"assessment_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Without a configured backend every read answers success with empty data and
// every write refuses with a not-configured message. Services built with nil
// repositories exercise exactly that path.

func TestDemoModeReadsSucceedEmpty(t *testing.T) {
	t.Run("users", func(t *testing.T) {
		res := NewUserService(nil, &config.Config{}).ListUsers()
		assert.True(t, res.Success)
		assert.Equal(t, util.MsgDemoMode, res.Message)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})

	t.Run("roles", func(t *testing.T) {
		res := NewRoleService(nil).ListRoles()
		assert.True(t, res.Success)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})

	t.Run("surveys", func(t *testing.T) {
		res := NewSurveyService(nil).ListSurveys()
		assert.True(t, res.Success)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})

	t.Run("sections", func(t *testing.T) {
		res := NewSurveyService(nil).ListSections(1)
		assert.True(t, res.Success)
		assert.Empty(t, res.Data)
	})

	t.Run("questions", func(t *testing.T) {
		res := NewQuestionService(nil).ListBySection(1)
		assert.True(t, res.Success)
		assert.Empty(t, res.Data)
	})

	t.Run("sessions by user", func(t *testing.T) {
		res := NewTestService(nil).ListSessionsByUser(1)
		assert.True(t, res.Success)
		assert.Empty(t, res.Data)
	})

	t.Run("certificates", func(t *testing.T) {
		res := NewCertificateService(nil, nil, nil, nil, nil).ListCertificates()
		assert.True(t, res.Success)
		assert.Empty(t, res.Data)
	})

	t.Run("settings", func(t *testing.T) {
		res := NewSettingService(nil).ListSettings()
		assert.True(t, res.Success)
		assert.Empty(t, res.Data)
	})
}

// The canned session is the one non-list read that still answers with data.
func TestDemoModeSessionRead(t *testing.T) {
	res := NewTestService(nil).GetSession(7)
	assert.True(t, res.Success)
	assert.Equal(t, util.MsgDemoMode, res.Message)
	assert.Equal(t, uint(7), res.Data.ID)
	assert.Equal(t, model.SessionNotStarted, res.Data.Status)
	assert.NotNil(t, res.Data.Answers)
}

func TestDemoModeWritesRefuse(t *testing.T) {
	cfg := &config.Config{}

	t.Run("create user", func(t *testing.T) {
		res := NewUserService(nil, cfg).CreateUser(CreateUserInput{Email: "x@y.z", Password: "p", FullName: "X", RoleID: 1})
		assert.False(t, res.Success)
		assert.Equal(t, util.MsgNotConfigured, res.Message)
	})

	t.Run("update role", func(t *testing.T) {
		name := "Renamed"
		res := NewRoleService(nil).UpdateRole(1, &model.RoleUpdate{Name: &name})
		assert.False(t, res.Success)
		assert.Equal(t, util.MsgNotConfigured, res.Message)
	})

	t.Run("create survey", func(t *testing.T) {
		res := NewSurveyService(nil).CreateSurvey(CreateSurveyInput{Title: "T"})
		assert.False(t, res.Success)
		assert.Equal(t, util.MsgNotConfigured, res.Message)
	})

	t.Run("delete question", func(t *testing.T) {
		res := NewQuestionService(nil).DeleteQuestion(1)
		assert.False(t, res.Success)
		assert.Equal(t, util.MsgNotConfigured, res.Message)
	})

	t.Run("update setting", func(t *testing.T) {
		res := NewSettingService(nil).UpdateSetting("k", "v", "someone")
		assert.False(t, res.Success)
		assert.Equal(t, util.MsgNotConfigured, res.Message)
	})
}

// The CSV upload endpoint acknowledges the file without importing anything.
func TestUploadCSVReportsEmptySummary(t *testing.T) {
	res := NewQuestionService(nil).UploadCSV("questions.csv", []byte("a,b,c\n"))
	assert.True(t, res.Success)
	assert.Zero(t, res.Data.Added)
	assert.Zero(t, res.Data.Skipped)
	assert.NotNil(t, res.Data.Errors)
	assert.Empty(t, res.Data.Errors)
}
