package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/api"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/config"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/redis"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/service"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/storage/postgres"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Notifier   *service.NotificationSender
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Queue      *redis.NotificationQueue
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
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	queue := redis.NewNotificationQueue(redisClient.Client, "notifications:queue")
	statsCache := redis.NewStatsCache(redisClient)

	scorer := service.ExpiryWeightedScorer{Weight: cfg.Matcher.ExpiryWeight}

	donationSvc := service.NewDonationService(storage.Accounts(), storage.Donations(), queue, scorer, logger)
	accountSvc := service.NewAccountService(storage.Accounts(), storage.Donations(), logger)
	statsSvc := service.NewStatsService(storage.Accounts(), storage.Stats(), statsCache, logger)

	svc := service.NewService(donationSvc, accountSvc, statsSvc)

	notifier := service.NewNotificationSender(logger, cfg.WhatsApp, queue)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Notifier:   notifier,
		Postgres:   storage,
		Redis:      redisClient,
		Queue:      queue,
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
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
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
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
