package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/estimator/internal/cache/redis"
	"github.com/davidbz/estimator/internal/config"
	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/httpserver"
	"github.com/davidbz/estimator/internal/httpserver/middleware"
	"github.com/davidbz/estimator/internal/metrics"
	"github.com/davidbz/estimator/internal/observability"
	"github.com/davidbz/estimator/internal/summary/echo"
	"github.com/davidbz/estimator/internal/summary/openai"
	"github.com/davidbz/estimator/internal/summary/registry"
)

const redisConnectTimeout = 5 * time.Second

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		return nil, fmt.Errorf("failed to provide config: %w", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		return nil, fmt.Errorf("failed to provide config dependencies: %w", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		return nil, fmt.Errorf("failed to provide logger: %w", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		return nil, fmt.Errorf("failed to provide event bus: %w", err)
	}

	// Metrics
	if err := container.Provide(newMetricsRegistry); err != nil {
		return nil, fmt.Errorf("failed to provide metrics registry: %w", err)
	}
	if err := container.Provide(func(reg *prometheus.Registry) prometheus.Registerer { return reg }); err != nil {
		return nil, fmt.Errorf("failed to provide metrics registerer: %w", err)
	}
	if err := container.Provide(func(reg *prometheus.Registry) prometheus.Gatherer { return reg }); err != nil {
		return nil, fmt.Errorf("failed to provide metrics gatherer: %w", err)
	}
	if err := container.Provide(metrics.NewHTTPMetrics); err != nil {
		return nil, fmt.Errorf("failed to provide HTTP metrics: %w", err)
	}
	if err := container.Provide(func(reg prometheus.Registerer) (domain.QuoteRecorder, error) {
		return metrics.NewQuoteMetrics(reg)
	}); err != nil {
		return nil, fmt.Errorf("failed to provide quote metrics: %w", err)
	}

	// Pricing
	if err := container.Provide(func() domain.RateCard {
		return domain.NewStandardRateCard()
	}); err != nil {
		return nil, fmt.Errorf("failed to provide rate card: %w", err)
	}
	if err := container.Provide(domain.NewEstimator); err != nil {
		return nil, fmt.Errorf("failed to provide estimator: %w", err)
	}

	// Summarizer Registry
	if err := container.Provide(func() domain.SummarizerRegistry {
		return registry.NewRegistry()
	}); err != nil {
		return nil, fmt.Errorf("failed to provide summarizer registry: %w", err)
	}

	// Register summarizers with registry (invoked for side effects)
	if err := container.Invoke(registerSummarizers); err != nil {
		return nil, fmt.Errorf("failed to register summarizers: %w", err)
	}

	// Quote Cache
	if err := container.Provide(newQuoteCache); err != nil {
		return nil, fmt.Errorf("failed to provide quote cache: %w", err)
	}

	// Domain Services
	if err := container.Provide(func(
		estimator *domain.Estimator,
		summarizers domain.SummarizerRegistry,
		cache domain.QuoteCache,
		events domain.EventPublisher,
		recorder domain.QuoteRecorder,
		cfg *config.QuoteConfig,
	) *domain.QuoteService {
		return domain.NewQuoteService(estimator, summarizers, cache, events, recorder, domain.QuoteOptions{
			DefaultSummarizer: cfg.DefaultSummarizer,
			CacheTTL:          cfg.CacheTTL,
		})
	}); err != nil {
		return nil, fmt.Errorf("failed to provide quote service: %w", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		return nil, fmt.Errorf("failed to provide middleware chain: %w", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		return nil, fmt.Errorf("failed to provide HTTP handler: %w", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		return nil, fmt.Errorf("failed to provide HTTP server: %w", err)
	}

	return container, nil
}

func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// registerSummarizers registers echo unconditionally and OpenAI when an API key is set.
// The logger parameter orders it after logger initialisation.
func registerSummarizers(
	reg domain.SummarizerRegistry,
	openaiCfg *openai.Config,
	_ *zap.Logger,
) error {
	ctx := context.Background()
	logger := observability.FromContext(ctx)

	if err := reg.Register(ctx, echo.NewSummarizer()); err != nil {
		return fmt.Errorf("failed to register echo summarizer: %w", err)
	}

	if openaiCfg.APIKey == "" {
		logger.Info("OpenAI summarizer not configured, skipping")
		return nil
	}

	openaiSummarizer, err := openai.NewSummarizer(*openaiCfg)
	if err != nil {
		return fmt.Errorf("failed to create OpenAI summarizer: %w", err)
	}

	if err := reg.Register(ctx, openaiSummarizer); err != nil {
		return fmt.Errorf("failed to register OpenAI summarizer: %w", err)
	}

	return nil
}

// newQuoteCache returns a nil cache when Redis is disabled, which turns caching off.
func newQuoteCache(cfg *redis.Config, _ *zap.Logger) (domain.QuoteCache, error) {
	logger := observability.FromContext(context.Background())

	if !cfg.Enabled {
		logger.Info("quote cache disabled")
		return nil, nil //nolint:nilnil // A nil cache disables caching
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := redis.NewClient(ctx, *cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("quote cache enabled", observability.String("addr", cfg.Addr))
	return redis.NewQuoteCache(client), nil
}
