package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CertificateService struct {
	Certs   *repository.CertificateRepository
	Users   *repository.UserRepository
	Surveys *repository.SurveyRepository
	Results *repository.ResultRepository
	Storage *StorageService
}

func NewCertificateService(
	certs *repository.CertificateRepository,
	users *repository.UserRepository,
	surveys *repository.SurveyRepository,
	results *repository.ResultRepository,
	storage *StorageService,
) *CertificateService {
	return &CertificateService{Certs: certs, Users: users, Surveys: surveys, Results: results, Storage: storage}
}

type IssueCertificateInput struct {
	ResultID   uint       `json:"resultId" binding:"required"`
	ValidUntil *time.Time `json:"validUntil"`
}

// CertificateFile is the downloadable artifact.
type CertificateFile struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"content"`
}

func (s *CertificateService) ListCertificates() util.Result[[]model.Certificate] {
	if s.Certs == nil {
		return util.Ok([]model.Certificate{}, util.MsgDemoMode)
	}

	certs, err := s.Certs.List()
	if err != nil {
		logger.Log.Error("failed to list certificates", zap.Error(err))
		return util.FailList[model.Certificate]("Failed to fetch certificates")
	}
	return util.Ok(certs, "Certificates fetched")
}

// IssueCertificate creates a certificate for a passed result, snapshotting the
// user and survey so the record survives later renames or deletions.
func (s *CertificateService) IssueCertificate(input IssueCertificateInput) util.Result[model.Certificate] {
	if s.Certs == nil {
		return util.Fail[model.Certificate](util.MsgNotConfigured)
	}

	result, err := s.Results.FindByID(input.ResultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[model.Certificate]("Result not found")
		}
		logger.Log.Error("failed to fetch result", zap.Uint("resultId", input.ResultID), zap.Error(err))
		return util.Fail[model.Certificate]("Failed to issue certificate")
	}
	if !result.IsPassed {
		return util.Fail[model.Certificate]("Certificate can only be issued for a passed result")
	}

	user, err := s.Users.FindByID(result.UserID)
	if err != nil {
		logger.Log.Error("failed to fetch user for certificate", zap.Uint("userId", result.UserID), zap.Error(err))
		return util.Fail[model.Certificate]("Failed to issue certificate")
	}
	survey, err := s.Surveys.FindByID(result.SurveyID)
	if err != nil {
		logger.Log.Error("failed to fetch survey for certificate", zap.Uint("surveyId", result.SurveyID), zap.Error(err))
		return util.Fail[model.Certificate]("Failed to issue certificate")
	}

	now := time.Now()
	cert := model.Certificate{
		UserID:            user.ID,
		UserName:          user.FullName,
		UserEmail:         user.Email,
		Jurisdiction:      user.Jurisdiction,
		SurveyID:          survey.ID,
		SurveyTitle:       survey.Title,
		ResultID:          result.ID,
		CertificateNumber: certificateNumber(now, result.ID),
		IssuedAt:          now,
		ValidUntil:        input.ValidUntil,
		Status:            model.CertificateActive,
	}
	if err := s.Certs.Create(&cert); err != nil {
		logger.Log.Error("failed to create certificate", zap.Uint("resultId", result.ID), zap.Error(err))
		return util.Fail[model.Certificate]("Failed to issue certificate")
	}

	// Best effort: persist the rendered artifact so later downloads serve the
	// stored file instead of regenerating it.
	if s.Storage.Configured() {
		content := renderCertificate(&cert)
		if err := s.Storage.Provider.Put(context.Background(), certificateFileName(&cert), content, "application/pdf"); err != nil {
			logger.Log.Warn("failed to store certificate artifact", zap.Uint("certId", cert.ID), zap.Error(err))
		}
	}

	return util.Ok(cert, "Certificate issued")
}

func (s *CertificateService) RevokeCertificate(id uint) util.Result[struct{}] {
	if s.Certs == nil {
		return util.Fail[struct{}](util.MsgNotConfigured)
	}

	if err := s.Certs.UpdateStatus(id, model.CertificateRevoked); err != nil {
		logger.Log.Error("failed to revoke certificate", zap.Uint("id", id), zap.Error(err))
		return util.Fail[struct{}]("Failed to revoke certificate")
	}
	return util.Done("Certificate revoked")
}

// DownloadCertificate returns the certificate artifact: the stored file when a
// storage backend holds one, otherwise synthesized placeholder content. The
// download counter is stamped best-effort and never fails the download.
func (s *CertificateService) DownloadCertificate(id uint) util.Result[CertificateFile] {
	if s.Certs == nil {
		return util.Fail[CertificateFile](util.MsgNotConfigured)
	}

	cert, err := s.Certs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.Fail[CertificateFile]("Certificate not found")
		}
		logger.Log.Error("failed to fetch certificate", zap.Uint("id", id), zap.Error(err))
		return util.Fail[CertificateFile]("Failed to download certificate")
	}

	content := renderCertificate(cert)
	if s.Storage.Configured() {
		if stored, err := s.Storage.Provider.Fetch(context.Background(), certificateFileName(cert)); err == nil {
			content = stored
		}
	}

	if err := s.Certs.IncrementDownloads(id); err != nil {
		logger.Log.Warn("failed to bump download count", zap.Uint("id", id), zap.Error(err))
	}

	return util.Ok(CertificateFile{
		FileName:    certificateFileName(cert),
		ContentType: "application/pdf",
		Content:     content,
	}, "Certificate ready")
}

func certificateNumber(issued time.Time, resultID uint) string {
	return fmt.Sprintf("CERT-%s-%05d", issued.Format("20060102"), resultID)
}

func certificateFileName(cert *model.Certificate) string {
	return fmt.Sprintf("certificates/%s.pdf", cert.CertificateNumber)
}

// renderCertificate synthesizes placeholder certificate content. A properly
// rendered document would come from a template engine; the placeholder keeps
// the download path working end to end.
func renderCertificate(cert *model.Certificate) []byte {
	return []byte(fmt.Sprintf(
		"%%PDF-placeholder\nCertificate %s\nAwarded to %s (%s)\nFor %s\nIssued %s\n",
		cert.CertificateNumber,
		cert.UserName,
		cert.UserEmail,
		cert.SurveyTitle,
		cert.IssuedAt.Format("2006-01-02"),
	))
}
