package model

import "time"

const (
	CertificateActive  = "active"
	CertificateRevoked = "revoked"
)

// Certificate snapshots the user and survey at issue time so a certificate
// stays readable after either is renamed or removed. ValidUntil is nil for
// certificates that never expire; a nil expiry must stay absent in JSON, never
// a zero date.
//
// swagger:model Certificate
type Certificate struct {
	BaseModel
	UserID            uint       `gorm:"column:user_id;not null;index" json:"userId"`
	UserName          string     `gorm:"column:user_name;size:100" json:"userName"`
	UserEmail         string     `gorm:"column:user_email;size:100" json:"userEmail"`
	Jurisdiction      string     `gorm:"column:jurisdiction;size:100" json:"jurisdiction"`
	SurveyID          uint       `gorm:"column:survey_id;not null;index" json:"surveyId"`
	SurveyTitle       string     `gorm:"column:survey_title;size:255" json:"surveyTitle"`
	ResultID          uint       `gorm:"column:result_id;index" json:"resultId"`
	CertificateNumber string     `gorm:"column:certificate_number;size:50;unique" json:"certificateNumber"`
	IssuedAt          time.Time  `gorm:"column:issued_at" json:"issuedAt"`
	ValidUntil        *time.Time `gorm:"column:valid_until" json:"validUntil,omitempty"`
	DownloadCount     int        `gorm:"column:download_count;default:0" json:"downloadCount"`
	Status            string     `gorm:"column:certificate_status;size:20;default:'active'" json:"status"`
}

func (Certificate) TableName() string {
	return "certificates"
}
