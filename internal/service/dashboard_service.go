package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type DashboardService struct {
	Users   *repository.UserRepository
	Surveys *repository.SurveyRepository
	Results *repository.ResultRepository
}

func NewDashboardService(
	users *repository.UserRepository,
	surveys *repository.SurveyRepository,
	results *repository.ResultRepository,
) *DashboardService {
	return &DashboardService{Users: users, Surveys: surveys, Results: results}
}

// Dashboard is the computed, non-persisted aggregate. A failed aggregation
// returns this shape fully zeroed, never partial or nil fields.
type Dashboard struct {
	TotalUsers      int64          `json:"totalUsers"`
	TotalSurveys    int64          `json:"totalSurveys"`
	TotalAttempts   int            `json:"totalAttempts"`
	AverageScore    float64        `json:"averageScore"`
	PassRate        float64        `json:"passRate"`
	RecentActivity  []ActivityItem `json:"recentActivity"`
	RoleBreakdown   []GroupStat    `json:"roleBreakdown"`
	SurveyBreakdown []GroupStat    `json:"surveyBreakdown"`
	MonthlyTrend    []MonthlyStat  `json:"monthlyTrend"`
}

type ActivityItem struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

type GroupStat struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	PassRate float64 `json:"passRate"`
}

type MonthlyStat struct {
	Month    string  `json:"month"`
	Attempts int     `json:"attempts"`
	AvgScore float64 `json:"avgScore"`
}

func zeroDashboard() Dashboard {
	return Dashboard{
		RecentActivity:  []ActivityItem{},
		RoleBreakdown:   []GroupStat{},
		SurveyBreakdown: []GroupStat{},
		MonthlyTrend:    []MonthlyStat{},
	}
}

// GetDashboard aggregates platform-wide stats. Live mode issues its three
// reads concurrently with no dependency between them and fails fast: any
// failed read collapses the whole aggregate.
func (s *DashboardService) GetDashboard() util.Result[Dashboard] {
	if s.Users == nil || s.Surveys == nil || s.Results == nil {
		return util.Ok(demoDashboard(), util.MsgDemoMode)
	}

	var (
		wg         sync.WaitGroup
		userCount  int64
		userErr    error
		surveys    int64
		surveyErr  error
		results    []model.TestResult
		resultsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		userCount, userErr = s.Users.Count()
	}()
	go func() {
		defer wg.Done()
		surveys, surveyErr = s.Surveys.Count()
	}()
	go func() {
		defer wg.Done()
		results, resultsErr = s.Results.ListAll()
	}()
	wg.Wait()

	for _, err := range []error{userErr, surveyErr, resultsErr} {
		if err != nil {
			logger.Log.Error("dashboard aggregation failed", zap.Error(err))
			// The dashboard path is the one place the raw error text is
			// surfaced to the caller.
			res := util.Fail[Dashboard](fmt.Sprintf("Failed to load dashboard: %v", err))
			res.Data = zeroDashboard()
			return res
		}
	}

	avg, passRate := ComputeStats(results)
	dashboard := zeroDashboard()
	dashboard.TotalUsers = userCount
	dashboard.TotalSurveys = surveys
	dashboard.TotalAttempts = len(results)
	dashboard.AverageScore = avg
	dashboard.PassRate = passRate
	return util.Ok(dashboard, "Dashboard loaded")
}

// ComputeStats derives average score and pass rate from a result set. Both are
// 0 for an empty set; there is never a division fault.
func ComputeStats(results []model.TestResult) (avgScore, passRate float64) {
	if len(results) == 0 {
		return 0, 0
	}
	var sum float64
	var passed int
	for _, r := range results {
		sum += r.Score
		if r.IsPassed {
			passed++
		}
	}
	total := float64(len(results))
	return sum / total, float64(passed) / total * 100
}

// demoDashboard is the canned aggregate shown without a backend; the only demo
// read that is non-empty. Activity ids are synthesized, never row ids.
func demoDashboard() Dashboard {
	now := time.Now()
	return Dashboard{
		TotalUsers:    142,
		TotalSurveys:  12,
		TotalAttempts: 387,
		AverageScore:  71.4,
		PassRate:      68.2,
		RecentActivity: []ActivityItem{
			{ID: model.NewToken(), UserName: "Demo Field Officer", Action: "Completed Safety Basics assessment", Timestamp: now.Add(-15 * time.Minute)},
			{ID: model.NewToken(), UserName: "Demo Zonal Manager", Action: "Published Q3 Compliance survey", Timestamp: now.Add(-2 * time.Hour)},
			{ID: model.NewToken(), UserName: "Demo Admin", Action: "Added 24 questions to Onboarding", Timestamp: now.Add(-5 * time.Hour)},
		},
		RoleBreakdown: []GroupStat{
			{Label: "Field Officer", Count: 96, PassRate: 64.5},
			{Label: "District Coordinator", Count: 31, PassRate: 77.1},
			{Label: "Regional Manager", Count: 15, PassRate: 82.3},
		},
		SurveyBreakdown: []GroupStat{
			{Label: "Safety Basics", Count: 203, PassRate: 72.9},
			{Label: "Q3 Compliance", Count: 118, PassRate: 58.4},
			{Label: "Onboarding", Count: 66, PassRate: 81.8},
		},
		MonthlyTrend: []MonthlyStat{
			{Month: now.AddDate(0, -2, 0).Format("2006-01"), Attempts: 98, AvgScore: 67.2},
			{Month: now.AddDate(0, -1, 0).Format("2006-01"), Attempts: 131, AvgScore: 70.8},
			{Month: now.Format("2006-01"), Attempts: 158, AvgScore: 74.1},
		},
	}
}
