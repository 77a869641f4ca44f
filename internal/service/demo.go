package service

import (
	"assessment_backend/internal/model"
	"time"
)

// Demo mode: when no database is configured the platform still answers every
// call. Reads succeed with empty (or canned, for the dashboard) data, writes
// refuse with a not-configured message, and login is fully emulated against the
// roster below so a frontend can demo navigation without a backend.

// DemoPassword is shared by every demo account.
const DemoPassword = "password123"

var demoRoles = []model.Role{
	{BaseModel: model.BaseModel{ID: 1}, Name: "Admin", Description: "Platform administrator", Level: 1, IsActive: true,
		MenuAccess: model.StringList{"dashboard", "users", "roles", "surveys", "questions", "tests", "certificates", "settings"}},
	{BaseModel: model.BaseModel{ID: 2}, Name: "Zonal Manager", Description: "Zone-level oversight", Level: 2, IsActive: true,
		MenuAccess: model.StringList{"dashboard", "users", "surveys", "tests", "certificates"}},
	{BaseModel: model.BaseModel{ID: 3}, Name: "Regional Manager", Description: "Region-level oversight", Level: 3, IsActive: true,
		MenuAccess: model.StringList{"dashboard", "surveys", "tests", "certificates"}},
	{BaseModel: model.BaseModel{ID: 4}, Name: "District Coordinator", Description: "District coordination", Level: 4, IsActive: true,
		MenuAccess: model.StringList{"dashboard", "tests", "certificates"}},
	{BaseModel: model.BaseModel{ID: 5}, Name: "Field Officer", Description: "Takes assessments", Level: 5, IsActive: true,
		MenuAccess: model.StringList{"dashboard", "tests"}},
}

type demoAccount struct {
	FullName string
	RoleID   uint
}

var demoRoster = map[string]demoAccount{
	"admin@esigma.com":    {FullName: "Demo Admin", RoleID: 1},
	"zonal@esigma.com":    {FullName: "Demo Zonal Manager", RoleID: 2},
	"regional@esigma.com": {FullName: "Demo Regional Manager", RoleID: 3},
	"district@esigma.com": {FullName: "Demo District Coordinator", RoleID: 4},
	"officer@esigma.com":  {FullName: "Demo Field Officer", RoleID: 5},
}

func demoRole(id uint) *model.Role {
	for i := range demoRoles {
		if demoRoles[i].ID == id {
			role := demoRoles[i]
			return &role
		}
	}
	return nil
}

// demoSession is the canned session returned for session reads in demo mode.
func demoSession(id uint) model.TestSession {
	now := time.Now()
	return model.TestSession{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		UserID:        1,
		SurveyID:      1,
		Status:        model.SessionNotStarted,
		RemainingTime: 3600,
		AttemptNumber: 1,
		Answers:       []model.TestAnswer{},
	}
}

// demoUser synthesizes a full user record for a roster account.
func demoUser(email string, account demoAccount) model.User {
	now := time.Now()
	return model.User{
		BaseModel:    model.BaseModel{ID: account.RoleID, CreatedAt: now, UpdatedAt: now},
		Email:        email,
		FullName:     account.FullName,
		RoleID:       account.RoleID,
		Role:         demoRole(account.RoleID),
		Jurisdiction: "Demo Jurisdiction",
		IsActive:     true,
		LastLogin:    &now,
	}
}
