package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A certificate without an expiry must omit validUntil entirely, never emit a
// zero date.
func TestCertificateValidUntilJSON(t *testing.T) {
	cert := Certificate{
		CertificateNumber: "CERT-20260901-00001",
		IssuedAt:          time.Now(),
		Status:            CertificateActive,
	}

	b, err := json.Marshal(cert)
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "validUntil")

	until := time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC)
	cert.ValidUntil = &until
	b, err = json.Marshal(cert)
	assert.NoError(t, err)
	assert.Contains(t, string(b), `"validUntil":"2027-09-01T00:00:00Z"`)
}
