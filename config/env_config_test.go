package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"POSTGRES_PORT", "IDENTITY_SERVICE_URL", "IDENTITY_CACHE_TTL",
		"REDIS_PORT", "RABBITMQ_USER", "RABBITMQ_PASSWORD",
		"MAX_VIDEO_SIZE", "SERVICE_NAME", "PORT", "DEPLOY_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadEnvConfig()

	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "http://localhost:9000", cfg.Identity.ServiceURL)
	assert.Equal(t, 60, cfg.Identity.CacheTTL)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, "guest", cfg.RabbitMQ.Username)
	assert.Equal(t, "guest", cfg.RabbitMQ.Password)
	assert.Equal(t, int64(60*1024*1024), cfg.Upload.MaxVideoSize)
	assert.Equal(t, "clipshare-media-service", cfg.Observability.ServiceName)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadEnvConfig_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("MAX_VIDEO_SIZE", "1048576")
	t.Setenv("IDENTITY_CACHE_TTL", "300")
	t.Setenv("PORT", "9090")
	t.Setenv("DEPLOY_ENV", "production")

	cfg := LoadEnvConfig()

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxVideoSize)
	assert.Equal(t, 300, cfg.Identity.CacheTTL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadEnvConfig_InvalidSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_VIDEO_SIZE", "not-a-number")

	cfg := LoadEnvConfig()

	assert.Equal(t, int64(60*1024*1024), cfg.Upload.MaxVideoSize)
}

func TestLoadEnvConfig_StripsOTLPScheme(t *testing.T) {
	t.Setenv("OTLP_ENDPOINT", "https://otel.example.com:4318")

	cfg := LoadEnvConfig()

	assert.Equal(t, "otel.example.com:4318", cfg.Observability.OTLPEndpoint)
}
