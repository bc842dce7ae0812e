package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content_syncer/internal/cms"
	"content_syncer/internal/config"
	"content_syncer/internal/publisher"
	"content_syncer/internal/render"
	"content_syncer/internal/scheduler"
	"content_syncer/internal/schema"
	"content_syncer/internal/service"
	"content_syncer/internal/storage/memory"
	"content_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single load cycle and exit")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if cfg.CMS.BaseURL == "" {
		logger.Info("cms base_url not configured, site builds from local content files, nothing to sync")
		return
	}

	// Initialize CMS source
	cmsClient := cms.New(cms.Config{
		BaseURL:     cfg.CMS.BaseURL,
		BatchSize:   cfg.CMS.BatchSize,
		MaxAttempts: cfg.CMS.Retry.MaxAttempts,
		RetryDelay:  cfg.CMS.Retry.Delay,
	}, logger)

	// Initialize content store
	var (
		store     service.Store
		loadState service.LoadStateStore
	)
	if cfg.Database.Host != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		logger.Info("connected to database")

		store = postgres.NewEntryStore(db)
		loadState = postgres.NewLoadStateStore(db)
	} else {
		logger.Info("no database configured, using in-memory store")
		store = memory.New()
	}

	// Initialize RabbitMQ publisher, if configured
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	loader := service.NewLoader(
		cmsClient,
		store,
		schema.New(),
		render.NewMarkdown(),
		loadState,
		pub,
		logger,
	)

	if *once {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Sync.CycleTimeout)
		defer cancel()

		if _, err := loader.Load(ctx); err != nil {
			logger.Error("load cycle failed", "error", err)
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(loader, cfg.Sync.Interval, cfg.Sync.CycleTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting content syncer",
		"source", cmsClient.Name(),
		"interval", cfg.Sync.Interval,
		"batch_size", cfg.CMS.BatchSize,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
