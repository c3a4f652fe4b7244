package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sauna.db", cfg.DB.Path)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Zero(t, cfg.RateLimit.PerSec)
	assert.True(t, cfg.Auth.AllowSignUp)
}

func TestLoad_FileValues(t *testing.T) {
	p := writeConfig(t, `
server:
  port: "9090"
  write_timeout: 3s
log:
  level: debug
ratelimit:
  per_sec: 2.5
  burst: 4
auth:
  enabled: true
  signing_key: s3cret
  token_ttl: 30m
  allow_sign_up: false
cors:
  allowed_origins: ["http://localhost:3000"]
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2.5, cfg.RateLimit.PerSec)
	assert.Equal(t, 4, cfg.RateLimit.Burst)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.AllowSignUp)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	p := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("SAUNA_SERVER_PORT", "7070")
	t.Setenv("SAUNA_DB_PATH", "/tmp/other.db")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "/tmp/other.db", cfg.DB.Path)
}

func TestLoad_AuthWithoutKeyFails(t *testing.T) {
	p := writeConfig(t, "auth:\n  enabled: true\n")
	_, err := Load(p)
	assert.ErrorContains(t, err, "signing_key")
}

func TestLoad_MalformedFile(t *testing.T) {
	p := writeConfig(t, "server: [not: a map")
	_, err := Load(p)
	assert.Error(t, err)
}
