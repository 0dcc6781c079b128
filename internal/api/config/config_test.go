package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: 9000
  allowed_origins:
    - https://school.example
database:
  dsn: "root:root@tcp(127.0.0.1:3306)/campus?parseTime=true"
asset:
  provider: imagekit
  delete_timeout: 2s
lifecycle:
  corruption_policy:
    blog: abort
session:
  secret: from-file
`

func writeConfig(t *testing.T, content string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://school.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "imagekit", cfg.Asset.Provider)
	assert.Equal(t, 2*time.Second, cfg.Asset.DeleteTimeout)
	assert.Equal(t, "@every 10m", cfg.Asset.ReconcileCron)
	assert.Equal(t, "abort", cfg.Lifecycle.CorruptionPolicy["blog"])
	assert.Equal(t, "skip", cfg.Lifecycle.DefaultPolicy)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, "/admin/login", cfg.Session.LoginPath)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("CAMPUS_SESSION_SECRET", "from-env")
	t.Setenv("CAMPUS_REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("CAMPUS_SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
