package repository

import (
	"assessment_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.DB.Preload("Role").Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Role").First(&user, id).Error
	return &user, err
}

// FindActiveByEmail is the login lookup: exact email match, active rows only,
// role joined. Inactive and unknown accounts are indistinguishable to the
// caller.
func (r *UserRepository) FindActiveByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Role").Where("email = ? AND is_active = ?", email, true).First(&user).Error
	return &user, err
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) UpdateFields(id uint, changes map[string]interface{}) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(changes).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}

func (r *UserRepository) TouchLastLogin(id uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}
