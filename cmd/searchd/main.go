package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/searchlite/searchlite/internal/analytics"
	analyticsstore "github.com/searchlite/searchlite/internal/analytics/store"
	"github.com/searchlite/searchlite/internal/corpus"
	"github.com/searchlite/searchlite/internal/indexer"
	"github.com/searchlite/searchlite/internal/ingest"
	"github.com/searchlite/searchlite/internal/search/cache"
	"github.com/searchlite/searchlite/internal/server"
	"github.com/searchlite/searchlite/pkg/config"
	"github.com/searchlite/searchlite/pkg/health"
	"github.com/searchlite/searchlite/pkg/kafka"
	"github.com/searchlite/searchlite/pkg/logger"
	"github.com/searchlite/searchlite/pkg/metrics"
	"github.com/searchlite/searchlite/pkg/postgres"
	pkgredis "github.com/searchlite/searchlite/pkg/redis"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	seed := flag.Bool("seed", false, "load the built-in sample documents on startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting search service", "port", cfg.Server.Port)

	m := metrics.New()
	ix := indexer.New()
	ix.SetCollisionHook(func(slot int, docID, previousID string) {
		m.SlotCollisionsTotal.Inc()
	})

	if *seed {
		ids := corpus.Load(ix)
		slog.Info("sample corpus loaded", "documents", len(ids))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var queryCache *cache.QueryCache
	redisClient, err := pkgredis.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, query caching disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		queryCache = cache.New(redisClient, cfg.Redis)
		slog.Info("query cache enabled",
			"addr", cfg.Redis.Addr,
			"ttl", cfg.Redis.CacheTTL,
		)
	}

	var collector *analytics.Collector
	aggregator := analytics.NewAggregator(nil)
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.AnalyticsEvents)
		collector = analytics.NewCollector(producer, cfg.Analytics.BufferSize)
		slog.Info("analytics collector publishing to kafka", "topic", cfg.Kafka.Topics.AnalyticsEvents)

		eventsConsumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.AnalyticsEvents, analytics.HandleEvent(aggregator))
		aggregator.SetConsumer(eventsConsumer)
		go func() {
			if err := aggregator.Start(ctx); err != nil {
				slog.Error("analytics aggregator error", "error", err)
			}
		}()
		slog.Info("analytics aggregator started")
	} else {
		collector = analytics.NewLocalCollector(aggregator, cfg.Analytics.BufferSize)
		slog.Info("kafka disabled, analytics aggregated in-process")
	}
	collector.Start(ctx)
	defer collector.Close()
	analyticsH := analytics.NewHandler(aggregator)

	h := server.New(ix, queryCache, collector, m, cfg.Search)

	if cfg.Kafka.Enabled {
		docsConsumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.DocumentIngest, ingest.HandleMessage(ix, h.AfterIngest))
		ingestConsumer := ingest.New(docsConsumer)
		go func() {
			if err := ingestConsumer.Start(ctx); err != nil {
				slog.Error("ingest consumer error", "error", err)
			}
		}()
		slog.Info("ingest consumer started", "topic", cfg.Kafka.Topics.DocumentIngest)
	}

	if cfg.Postgres.Enabled {
		pgClient, err := postgres.New(cfg.Postgres)
		if err != nil {
			slog.Warn("postgres unavailable, analytics snapshots disabled", "error", err)
		} else {
			defer pgClient.Close()
			store := analyticsstore.New(pgClient)
			if err := store.EnsureSchema(ctx); err != nil {
				slog.Warn("snapshot schema setup failed, analytics snapshots disabled", "error", err)
			} else {
				go store.RunSnapshotLoop(ctx, aggregator, cfg.Analytics.SnapshotInterval)
				slog.Info("analytics snapshot loop started", "interval", cfg.Analytics.SnapshotInterval)
			}
		}
	}

	checker := health.NewChecker()
	checker.Register("index", func(ctx context.Context) health.ComponentHealth {
		stats := ix.Statistics()
		return health.ComponentHealth{
			Status:  health.StatusUp,
			Message: fmt.Sprintf("%d documents, %d words", stats.DocumentCount, stats.UniqueWordCount),
		}
	})
	checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
		if redisClient == nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: "not configured"}
		}
		if err := redisClient.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics.Port)
		metricsServer.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown error", "error", err)
			}
		}()
	}

	router := server.NewRouter(h, server.RouterConfig{
		Analytics: analyticsH,
		Checker:   checker,
		Metrics:   m,
		Timeout:   cfg.Server.WriteTimeout,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("search service listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("search service stopped")
}
