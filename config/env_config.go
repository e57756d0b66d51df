package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	Cloudinary struct {
		CloudName string
		APIKey    string
		APISecret string
	}
	JWT struct {
		SecretKey string
	}
	Identity struct {
		ServiceURL string
		CacheTTL   int // seconds
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	CORS struct {
		AllowDomains string
	}
	Upload struct {
		MaxVideoSize int64 // bytes
	}
	Observability struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Server struct {
		Port string
	}
	Environment string
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("POSTGRES_HOST")
	config.Postgres.Database = os.Getenv("POSTGRES_DB")
	config.Postgres.Username = os.Getenv("POSTGRES_USER")
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	config.Postgres.Port = os.Getenv("POSTGRES_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// Cloudinary credentials are required for uploads but their absence is a
	// per-request configuration error, not a startup failure.
	config.Cloudinary.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	config.Cloudinary.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	config.Cloudinary.APISecret = os.Getenv("CLOUDINARY_API_SECRET")

	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")

	config.Identity.ServiceURL = os.Getenv("IDENTITY_SERVICE_URL")
	if config.Identity.ServiceURL == "" {
		config.Identity.ServiceURL = "http://localhost:9000"
	}
	if val := os.Getenv("IDENTITY_CACHE_TTL"); val != "" {
		if ttl, err := strconv.Atoi(val); err == nil {
			config.Identity.CacheTTL = ttl
		}
	}
	if config.Identity.CacheTTL == 0 {
		config.Identity.CacheTTL = 60
	}

	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")
	if config.Redis.Port == "" {
		config.Redis.Port = "6379"
	}
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	if val := os.Getenv("MAX_VIDEO_SIZE"); val != "" {
		if size, err := strconv.ParseInt(val, 10, 64); err == nil && size > 0 {
			config.Upload.MaxVideoSize = size
		}
	}
	if config.Upload.MaxVideoSize == 0 {
		config.Upload.MaxVideoSize = 60 * 1024 * 1024 // 60 MiB
	}

	endpoint := os.Getenv("OTLP_ENDPOINT")
	// The exporter wants a bare host, not a URL.
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	config.Observability.OTLPEndpoint = endpoint
	config.Observability.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Observability.ServiceName == "" {
		config.Observability.ServiceName = "clipshare-media-service"
	}

	config.Server.Port = os.Getenv("PORT")
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	config.Environment = os.Getenv("DEPLOY_ENV")
	if config.Environment == "" {
		config.Environment = "development"
	}

	return &config
}
