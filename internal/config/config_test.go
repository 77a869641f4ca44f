package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfigured(t *testing.T) {
	var db DatabaseConfig
	assert.False(t, db.Configured())

	db.Host = "db.local"
	assert.True(t, db.Configured())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
  mode: debug
database:
  host: ""
jwt:
  secret: short
  expire_hours: 12
rate_limit:
  max_requests: 50
  window_minutes: 5
`
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfig(dir)
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Database.Configured())
	assert.Equal(t, 50, cfg.RateLimit.MaxRequests)
	assert.Equal(t, float64(12), cfg.JWT.ExpireTime.Hours())
}

// A short secret is only rejected in release mode.
func TestLoadConfigReleaseSecretCheck(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "8080"
  mode: release
jwt:
  secret: short
  expire_hours: 24
`
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
