package infra

import (
	"log"

	"github.com/davitran/clipshare/config"
	"github.com/davitran/clipshare/infra/produce"
)

type Infra struct {
	Postgres             *PostgresClient
	Logger               *LoggerClient
	Cloudinary           *CloudinaryClient
	AuthorizationService *AuthorizationService
	Redis                *RedisClient
	RabbitMQ             *RabbitMQClient
	Produce              *produce.Produce
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	cloudinary := InitCloudinaryClient(cfg.EnvConfig)
	if cloudinary == nil {
		panic("Failed to initialize Cloudinary service")
	}

	// Redis only accelerates identity lookups; run without it if unreachable.
	redis, err := NewRedisClient(cfg.EnvConfig)
	if err != nil {
		log.Printf("Warning: failed to initialize Redis: %v (identity verdicts will not be cached)", err)
		redis = nil
	}

	authorizationService := InitAuthorizationService(cfg.EnvConfig, redis)
	if authorizationService == nil {
		panic("Failed to initialize Authorization service")
	}

	// RabbitMQ carries best-effort asset events; run without it if unreachable.
	rabbitMQ, err := NewRabbitMQClient(cfg.EnvConfig)
	var produceService *produce.Produce
	if err != nil {
		log.Printf("Warning: failed to initialize RabbitMQ: %v (asset events will not be published)", err)
		rabbitMQ = nil
	} else {
		produceService, err = produce.InitProduce(rabbitMQ.Channel)
		if err != nil {
			log.Printf("Warning: failed to initialize Produce service: %v (asset events will not be published)", err)
			produceService = nil
		}
	}

	infraInstance = &Infra{
		Postgres:             postgres,
		Logger:               logger,
		Cloudinary:           cloudinary,
		AuthorizationService: authorizationService,
		Redis:                redis,
		RabbitMQ:             rabbitMQ,
		Produce:              produceService,
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
