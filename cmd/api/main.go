package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dashboard-srv/config"
	"dashboard-srv/config/kafka"
	"dashboard-srv/config/minio"
	"dashboard-srv/config/postgre"
	"dashboard-srv/config/redis"
	"dashboard-srv/internal/httpserver"
	"dashboard-srv/pkg/discord"
	pkgHttp "dashboard-srv/pkg/http"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
	pkgMinio "dashboard-srv/pkg/minio"
	pkgRedis "dashboard-srv/pkg/redis"
	"dashboard-srv/pkg/statsapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Dashboard Service...")

	// Statistics backend
	statsClient := statsapi.New(statsapi.Config{
		BaseURL: cfg.Backend.URL,
		HTTPClient: pkgHttp.NewClient(pkgHttp.ClientConfig{
			Timeout:   cfg.Backend.Timeout,
			Retries:   cfg.Backend.Retries,
			RetryWait: cfg.Backend.RetryWait,
		}),
	})
	logger.Infof(ctx, "Statistics backend client initialized for %s", cfg.Backend.URL)

	// Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled() {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer redis.Disconnect()
		logger.Infof(ctx, "Redis connected to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// PostgreSQL (optional)
	var postgresDB *sql.DB
	if cfg.Postgres.Enabled() {
		postgresDB, err = postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
			return
		}
		defer postgre.Disconnect()
		logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	}

	// MinIO (optional)
	var minioClient pkgMinio.MinIO
	if cfg.MinIO.Enabled() {
		minioClient, err = minio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		defer minio.Disconnect()
		logger.Infof(ctx, "MinIO connected, exports go to bucket %s", cfg.MinIO.Bucket)
	}

	// Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled() {
		kafkaProducer, err = kafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer kafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Statistics backend
		StatsAPI: statsClient,

		// Optional integrations
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Dashboard Service stopped gracefully")
}
