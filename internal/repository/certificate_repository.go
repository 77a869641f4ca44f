package repository

import (
	"assessment_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) List() ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.Order("issued_at DESC").Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.First(&cert, id).Error
	return &cert, err
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

func (r *CertificateRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&model.Certificate{}).Where("id = ?", id).Update("certificate_status", status).Error
}

func (r *CertificateRepository) IncrementDownloads(id uint) error {
	return r.DB.Model(&model.Certificate{}).
		Where("id = ?", id).
		Update("download_count", gorm.Expr("download_count + ?", 1)).
		Error
}
