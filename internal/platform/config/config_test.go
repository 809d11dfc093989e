package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv は必須の環境変数をテスト用に設定します。
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_ID", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret-password")
	t.Setenv("SESSION_SECRET", "test-session-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err, "failed to load config")

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "gym.db", cfg.DB.Path)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Empty(t, cfg.Redis.Host, "Redis should be disabled by default")
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "gym")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "gymdb")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load("")
	require.NoError(t, err, "failed to load config")

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("ADMIN_ID", "")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load("")
	assert.Error(t, err, "missing required env vars should fail")
}

func TestLoad_MissingEnvFileIsNotAnError(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err, "a missing .env file must not fail the load")
	assert.Equal(t, "admin", cfg.Admin.ID)
}
