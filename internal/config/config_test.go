package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9090"
database:
  url: "postgres://localhost/fuel"
jwt:
  secret: "s3cret"
  issuer: "fuelapi"
  audience: "fuelapi-clients"
  ttl_hours: 12
uploads:
  dir: "proofs"
  max_size_mib: 10
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/fuel", cfg.Database.URL)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL())
	assert.Equal(t, "proofs", cfg.Uploads.Dir)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "s3cret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxFileSize())
}

func TestLoadConfigMissingSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":8080"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
