package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty set yields zeros", func(t *testing.T) {
		avg, passRate := ComputeStats(nil)
		assert.Zero(t, avg)
		assert.Zero(t, passRate)
	})

	t.Run("three of four passed", func(t *testing.T) {
		results := []model.TestResult{
			{Score: 80, IsPassed: true},
			{Score: 90, IsPassed: true},
			{Score: 70, IsPassed: true},
			{Score: 40, IsPassed: false},
		}
		avg, passRate := ComputeStats(results)
		assert.InDelta(t, 70.0, avg, 0.001)
		assert.InDelta(t, 75.0, passRate, 0.001)
	})

	t.Run("all failed", func(t *testing.T) {
		results := []model.TestResult{{Score: 10}, {Score: 20}}
		avg, passRate := ComputeStats(results)
		assert.InDelta(t, 15.0, avg, 0.001)
		assert.Zero(t, passRate)
	})
}

func TestDashboardDemoMode(t *testing.T) {
	svc := NewDashboardService(nil, nil, nil)
	res := svc.GetDashboard()

	assert.True(t, res.Success)
	assert.Equal(t, util.MsgDemoMode, res.Message)
	assert.NotZero(t, res.Data.TotalUsers)
	assert.NotEmpty(t, res.Data.RecentActivity)
	assert.NotEmpty(t, res.Data.RoleBreakdown)
	assert.NotEmpty(t, res.Data.MonthlyTrend)

	for _, item := range res.Data.RecentActivity {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.UserName)
	}
}

func TestZeroDashboardShape(t *testing.T) {
	d := zeroDashboard()
	assert.NotNil(t, d.RecentActivity)
	assert.NotNil(t, d.RoleBreakdown)
	assert.NotNil(t, d.SurveyBreakdown)
	assert.NotNil(t, d.MonthlyTrend)
	assert.Empty(t, d.RecentActivity)
}
