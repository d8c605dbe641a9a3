package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sanjjiiev/Smart-Sheild/internal/api"
	"github.com/sanjjiiev/Smart-Sheild/internal/config"
	"github.com/sanjjiiev/Smart-Sheild/internal/hospitals"
	"github.com/sanjjiiev/Smart-Sheild/internal/ingest"
	"github.com/sanjjiiev/Smart-Sheild/internal/mailer"
	"github.com/sanjjiiev/Smart-Sheild/internal/redis"
	"github.com/sanjjiiev/Smart-Sheild/internal/service"
	"github.com/sanjjiiev/Smart-Sheild/internal/storage/postgres"
	"github.com/sanjjiiev/Smart-Sheild/pkg/logger"
)

const alertQueueKey = "alerts:queue"

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	Ingestor    *ingest.Ingestor
	AlertSender *service.AlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, alertQueueKey)
	zoneCache := redis.NewZoneCache(redisClient)

	logger.Info("Loading hospital directory", slog.String("path", cfg.Hospitals.Path))
	hospitalDir, err := hospitals.Load(cfg.Hospitals.Path, logger)
	if err != nil {
		storage.Pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to load hospitals: %w", err)
	}

	alertMailer := mailer.New(cfg.SMTP, logger)

	dispatchSvc := service.NewDispatchService(
		storage.Ambulances(),
		hospitalDir,
		storage.Accidents(),
		storage.Vehicles(),
		alertQueue,
		logger,
		5*time.Second,
	)
	querySvc := service.NewAccidentQueryService(storage.Accidents(), zoneCache, logger, 10*time.Second)
	svc := service.NewService(dispatchSvc, querySvc)

	mailbox := ingest.NewMailbox()
	ingestor := ingest.New(dispatchSvc, mailbox, logger)
	alertSender := service.NewAlertSender(logger, alertQueue, alertMailer)

	httpServer := api.NewServer(cfg, logger, svc, mailbox)
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Ingestor:    ingestor,
		AlertSender: alertSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
