package service

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users *repository.UserRepository // nil when no backend is configured
	Cfg   *config.Config
}

func NewAuthService(users *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

type LoginData struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (s *AuthService) Login(email, password string) util.Result[LoginData] {
	if s.Users == nil {
		return s.demoLogin(email, password)
	}

	user, err := s.Users.FindActiveByEmail(email)
	if err != nil {
		// Unknown email and inactive account produce the same message as a
		// wrong password, so nothing leaks about which accounts exist.
		return util.Fail[LoginData](util.MsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return util.Fail[LoginData](util.MsgInvalidCredentials)
	}

	// Fire and forget: a failed last-login stamp must not fail the login.
	go func(id uint) {
		if err := s.Users.TouchLastLogin(id); err != nil {
			logger.Log.Warn("failed to update last login", zap.Uint("userId", id), zap.Error(err))
		}
	}(user.ID)

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		logger.Log.Error("failed to sign token", zap.Error(err))
		return util.Fail[LoginData]("Login failed")
	}

	return util.Ok(LoginData{Token: token, User: *user}, "Login successful")
}

// demoLogin checks the fixed in-memory roster. Every demo account shares one
// password; a match yields a synthesized user record and a random opaque token.
func (s *AuthService) demoLogin(email, password string) util.Result[LoginData] {
	account, ok := demoRoster[email]
	if !ok || password != DemoPassword {
		return util.Fail[LoginData](util.MsgInvalidCredentials)
	}

	return util.Ok(LoginData{
		Token: model.NewToken(),
		User:  demoUser(email, account),
	}, "Login successful (demo mode)")
}

// Logout is stateless: there is no server-side session to invalidate.
func (s *AuthService) Logout() util.Result[struct{}] {
	return util.Done("Logged out")
}
