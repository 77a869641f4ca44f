package service

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCertificateNumber(t *testing.T) {
	issued := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "CERT-20260901-00042", certificateNumber(issued, 42))
	assert.Equal(t, "CERT-20260901-12345", certificateNumber(issued, 12345))
}

func TestCertificateFileName(t *testing.T) {
	cert := &model.Certificate{CertificateNumber: "CERT-20260901-00001"}
	assert.Equal(t, "certificates/CERT-20260901-00001.pdf", certificateFileName(cert))
}

func TestRenderCertificate(t *testing.T) {
	cert := &model.Certificate{
		CertificateNumber: "CERT-20260901-00007",
		UserName:          "Demo Field Officer",
		UserEmail:         "officer@esigma.com",
		SurveyTitle:       "Safety Basics",
		IssuedAt:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	content := string(renderCertificate(cert))
	assert.Contains(t, content, "CERT-20260901-00007")
	assert.Contains(t, content, "Demo Field Officer")
	assert.Contains(t, content, "Safety Basics")
	assert.Contains(t, content, "2026-09-01")
}

// An unconfigured storage service reports so without panicking; a nil one too.
func TestStorageConfigured(t *testing.T) {
	var nilSvc *StorageService
	assert.False(t, nilSvc.Configured())
	assert.False(t, (&StorageService{}).Configured())

	dir := t.TempDir()
	svc := &StorageService{Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}}
	assert.True(t, svc.Configured())

	data := []byte("artifact")
	assert.NoError(t, svc.Provider.Put(context.Background(), "certificates/x.pdf", data, "application/pdf"))
	got, err := svc.Provider.Fetch(context.Background(), "certificates/x.pdf")
	assert.NoError(t, err)
	assert.Equal(t, data, got)
	assert.NoError(t, svc.Provider.Delete(context.Background(), "certificates/x.pdf"))
}
