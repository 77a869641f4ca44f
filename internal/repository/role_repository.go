package repository

import (
	"assessment_backend/internal/model"

	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{DB: db}
}

func (r *RoleRepository) List() ([]model.Role, error) {
	var roles []model.Role
	err := r.DB.Order("level ASC").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) FindByID(id uint) (*model.Role, error) {
	var role model.Role
	err := r.DB.First(&role, id).Error
	return &role, err
}

func (r *RoleRepository) Create(role *model.Role) error {
	return r.DB.Create(role).Error
}

func (r *RoleRepository) UpdateFields(id uint, changes map[string]interface{}) error {
	return r.DB.Model(&model.Role{}).Where("id = ?", id).Updates(changes).Error
}

func (r *RoleRepository) UpdateMenuAccess(id uint, menus model.StringList) error {
	return r.DB.Model(&model.Role{}).Where("id = ?", id).Update("menu_access", menus).Error
}

func (r *RoleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Role{}, id).Error
}
