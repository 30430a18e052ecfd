package httpserver

import (
	"database/sql"
	"errors"

	"dashboard-srv/config"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/preset"
	"dashboard-srv/pkg/discord"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/minio"
	pkgRedis "dashboard-srv/pkg/redis"
	"dashboard-srv/pkg/statsapi"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Statistics backend
	statsAPI statsapi.IStatsAPI

	// Optional integrations (nil when not configured)
	redisClient   pkgRedis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Domain usecases shared between domains
	dashboardUC dashboard.UseCase
	presetUC    preset.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Statistics backend
	StatsAPI statsapi.IStatsAPI

	// Optional integrations
	RedisClient   pkgRedis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Statistics backend
		statsAPI: cfg.StatsAPI,

		// Optional integrations
		redisClient:   cfg.RedisClient,
		postgresDB:    cfg.PostgresDB,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Statistics backend
	if srv.statsAPI == nil {
		return errors.New("statsAPI is required")
	}

	// Session store
	if srv.config.Session.Store == config.SessionStoreRedis && srv.redisClient == nil {
		return errors.New("redisClient is required when session.store is redis")
	}

	return nil
}
