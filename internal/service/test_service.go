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

type TestService struct {
	Sessions *repository.TestSessionRepository
}

func NewTestService(sessions *repository.TestSessionRepository) *TestService {
	return &TestService{Sessions: sessions}
}

// GetSession fetches one session by id. The status string is carried through
// as stored: an unrecognized state coming from the backend is passed to the
// caller rather than rejected. Answers are not populated by this operation.
func (s *TestService) GetSession(id uint) util.Result[model.TestSession] {
	if s.Sessions == nil {
		return util.Ok(demoSession(id), util.MsgDemoMode)
	}

	session, err := s.Sessions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[model.TestSession]("Session not found")
		}
		logger.Log.Error("failed to fetch session", zap.Uint("id", id), zap.Error(err))
		return util.Fail[model.TestSession]("Failed to fetch session")
	}
	session.Answers = []model.TestAnswer{}
	return util.Ok(*session, "Session fetched")
}

func (s *TestService) ListSessionsByUser(userID uint) util.Result[[]model.TestSession] {
	if s.Sessions == nil {
		return util.Ok([]model.TestSession{}, util.MsgDemoMode)
	}

	sessions, err := s.Sessions.ListByUser(userID)
	if err != nil {
		logger.Log.Error("failed to list sessions", zap.Uint("userId", userID), zap.Error(err))
		return util.FailList[model.TestSession]("Failed to fetch sessions")
	}
	for i := range sessions {
		sessions[i].Answers = []model.TestAnswer{}
	}
	return util.Ok(sessions, "Sessions fetched")
}
