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

type RoleService struct {
	Roles *repository.RoleRepository
}

func NewRoleService(roles *repository.RoleRepository) *RoleService {
	return &RoleService{Roles: roles}
}

type CreateRoleInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Level       int      `json:"level" binding:"required"`
	MenuAccess  []string `json:"menuAccess"`
}

func (s *RoleService) ListRoles() util.Result[[]model.Role] {
	if s.Roles == nil {
		return util.Ok([]model.Role{}, util.MsgDemoMode)
	}

	roles, err := s.Roles.List()
	if err != nil {
		logger.Log.Error("failed to list roles", zap.Error(err))
		return util.FailList[model.Role]("Failed to fetch roles")
	}
	return util.Ok(roles, "Roles fetched")
}

func (s *RoleService) CreateRole(input CreateRoleInput) util.Result[model.Role] {
	if s.Roles == nil {
		return util.Fail[model.Role](util.MsgNotConfigured)
	}

	role := model.Role{
		Name:        input.Name,
		Description: input.Description,
		Level:       input.Level,
		IsActive:    true,
		MenuAccess:  model.StringList(input.MenuAccess),
	}
	if err := s.Roles.Create(&role); err != nil {
		logger.Log.Error("failed to create role", zap.String("name", input.Name), zap.Error(err))
		return util.Fail[model.Role]("Failed to create role")
	}
	return util.Ok(role, "Role created")
}

// UpdateRole applies a partial update. The authority level is not part of the
// update payload and is always preserved from the original row.
func (s *RoleService) UpdateRole(id uint, update *model.RoleUpdate) util.Result[model.Role] {
	if s.Roles == nil {
		return util.Fail[model.Role](util.MsgNotConfigured)
	}

	changes := update.Changes()
	if len(changes) > 0 {
		if err := s.Roles.UpdateFields(id, changes); err != nil {
			logger.Log.Error("failed to update role", zap.Uint("id", id), zap.Error(err))
			return util.Fail[model.Role]("Failed to update role")
		}
	}

	role, err := s.Roles.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[model.Role]("Role not found")
		}
		logger.Log.Error("failed to reload role", zap.Uint("id", id), zap.Error(err))
		return util.Fail[model.Role]("Failed to update role")
	}
	return util.Ok(*role, "Role updated")
}

func (s *RoleService) UpdateMenuAccess(id uint, menus []string) util.Result[model.Role] {
	if s.Roles == nil {
		return util.Fail[model.Role](util.MsgNotConfigured)
	}

	if err := s.Roles.UpdateMenuAccess(id, model.StringList(menus)); err != nil {
		logger.Log.Error("failed to update menu access", zap.Uint("id", id), zap.Error(err))
		return util.Fail[model.Role]("Failed to update menu access")
	}

	role, err := s.Roles.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[model.Role]("Role not found")
		}
		logger.Log.Error("failed to reload role", zap.Uint("id", id), zap.Error(err))
		return util.Fail[model.Role]("Failed to update menu access")
	}
	return util.Ok(*role, "Menu access updated")
}

func (s *RoleService) DeleteRole(id uint) util.Result[struct{}] {
	if s.Roles == nil {
		return util.Fail[struct{}](util.MsgNotConfigured)
	}

	if err := s.Roles.Delete(id); err != nil {
		logger.Log.Error("failed to delete role", zap.Uint("id", id), zap.Error(err))
		return util.Fail[struct{}]("Failed to delete role")
	}
	return util.Done("Role deleted")
}
