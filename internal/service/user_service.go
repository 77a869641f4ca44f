package service

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Users *repository.UserRepository
	Cfg   *config.Config
}

func NewUserService(users *repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{Users: users, Cfg: cfg}
}

type CreateUserInput struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	FullName     string `json:"fullName" binding:"required"`
	RoleID       uint   `json:"roleId" binding:"required"`
	Jurisdiction string `json:"jurisdiction"`
	Zone         string `json:"zone"`
	Region       string `json:"region"`
	District     string `json:"district"`
	EmployeeID   string `json:"employeeId"`
	Phone        string `json:"phone"`
}

func (s *UserService) ListUsers() util.Result[[]model.User] {
	if s.Users == nil {
		return util.Ok([]model.User{}, util.MsgDemoMode)
	}

	users, err := s.Users.List()
	if err != nil {
		logger.Log.Error("failed to list users", zap.Error(err))
		return util.FailList[model.User]("Failed to fetch users")
	}
	return util.Ok(users, "Users fetched")
}

func (s *UserService) CreateUser(input CreateUserInput) util.Result[model.User] {
	if s.Users == nil {
		return util.Fail[model.User](util.MsgNotConfigured)
	}

	cost := s.Cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), cost)
	if err != nil {
		logger.Log.Error("failed to hash password", zap.Error(err))
		return util.Fail[model.User]("Failed to create user")
	}

	user := model.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		RoleID:       input.RoleID,
		Jurisdiction: input.Jurisdiction,
		Zone:         input.Zone,
		Region:       input.Region,
		District:     input.District,
		EmployeeID:   input.EmployeeID,
		Phone:        input.Phone,
		IsActive:     true,
	}
	if err := s.Users.Create(&user); err != nil {
		logger.Log.Error("failed to create user", zap.String("email", input.Email), zap.Error(err))
		return util.Fail[model.User]("Failed to create user")
	}
	return util.Ok(user, "User created")
}

func (s *UserService) UpdateUser(id uint, update *model.UserUpdate) util.Result[model.User] {
	if s.Users == nil {
		return util.Fail[model.User](util.MsgNotConfigured)
	}

	changes := update.Changes()
	if len(changes) > 0 {
		if err := s.Users.UpdateFields(id, changes); err != nil {
			logger.Log.Error("failed to update user", zap.Uint("id", id), zap.Error(err))
			return util.Fail[model.User]("Failed to update user")
		}
	}

	user, err := s.Users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[model.User]("User not found")
		}
		logger.Log.Error("failed to reload user", zap.Uint("id", id), zap.Error(err))
		return util.Fail[model.User]("Failed to update user")
	}
	return util.Ok(*user, "User updated")
}

func (s *UserService) DeleteUser(id uint) util.Result[struct{}] {
	if s.Users == nil {
		return util.Fail[struct{}](util.MsgNotConfigured)
	}

	if err := s.Users.Delete(id); err != nil {
		logger.Log.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return util.Fail[struct{}]("Failed to delete user")
	}
	return util.Done("User deleted")
}
