package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8020", cfg.Server.Port)
	assert.Equal(t, "catalog_db", cfg.Database.DBName)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "posters", cfg.MinIO.BucketName)
	assert.Equal(t, "config/platforms.json", cfg.SeedFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_TOKEN_TTL", "1h")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("AWS_USE_SSL", "true")
	t.Setenv("SEED_FILE", "/etc/catalog/platforms.json")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "/etc/catalog/platforms.json", cfg.SeedFile)
}

func TestLoadIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("JWT_TOKEN_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.MinIO.AccessKeyID = "minio"
	cfg.MinIO.SecretAccessKey = "minio123"
	require.NoError(t, cfg.Validate())

	cfg.Auth.JWTSecret = ""
	require.Error(t, cfg.Validate())
}
