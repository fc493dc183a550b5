package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"article_pipeline/internal/analysis"
	"article_pipeline/internal/asset"
	"article_pipeline/internal/cache"
	"article_pipeline/internal/config"
	"article_pipeline/internal/draft"
	"article_pipeline/internal/imagegen"
	"article_pipeline/internal/imageprompt"
	"article_pipeline/internal/llm"
	"article_pipeline/internal/pacing"
	"article_pipeline/internal/publisher"
	"article_pipeline/internal/service"
	"article_pipeline/internal/source/feed"
	"article_pipeline/internal/source/file"
	"article_pipeline/internal/storage/memory"
	"article_pipeline/internal/storage/sqlstore"
)

// app holds the wired components shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	cache  *cache.Store

	closers []func() error
}

func loadApp(ctx context.Context, flags *rootFlags) (*app, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return nil, err
	}

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	a := &app{cfg: cfg, logger: setupLogger(level)}

	kv, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.cache = cache.New(kv, a.logger, cache.WithTTL(cfg.Cache.TTL))

	return a, nil
}

func (a *app) openStore(ctx context.Context) (cache.KeyValueStore, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch a.cfg.Cache.Backend {
	case "postgres":
		db, err = sqlstore.Open(ctx, sqlstore.DriverPostgres, a.cfg.Database.DSN())
	case "sqlite":
		db, err = sqlstore.Open(ctx, sqlstore.DriverSQLite, a.cfg.Cache.SQLitePath)
	default:
		a.logger.Info("using in-memory cache")
		return memory.NewKVStore(), nil
	}
	if err != nil {
		a.logger.Error("failed to open cache database", "backend", a.cfg.Cache.Backend, "error", err)
		return nil, err
	}
	a.closers = append(a.closers, db.Close)

	if err := sqlstore.Migrate(ctx, db); err != nil {
		a.logger.Error("failed to migrate cache database", "error", err)
		return nil, err
	}
	a.logger.Info("connected to cache database", "backend", a.cfg.Cache.Backend)

	return sqlstore.NewKVStore(db), nil
}

func (a *app) completer(ctx context.Context) (llm.Completer, error) {
	c, err := llm.New(ctx, llm.Settings{
		Provider:    a.cfg.LLM.Provider,
		Model:       a.cfg.LLM.Model,
		APIKey:      a.cfg.LLM.APIKey,
		BaseURL:     a.cfg.LLM.BaseURL,
		Temperature: a.cfg.LLM.Temperature,
		Timeout:     a.cfg.LLM.Timeout,
	})
	if err != nil {
		a.logger.Error("failed to create llm client", "error", err)
		return nil, err
	}
	return c, nil
}

func (a *app) publisher() (service.Publisher, error) {
	if !a.cfg.RabbitMQ.Enabled {
		return nil, nil
	}

	pub, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
		QueueName:  a.cfg.RabbitMQ.QueueName,
	}, a.logger)
	if err != nil {
		a.logger.Error("failed to connect to rabbitmq", "error", err)
		return nil, err
	}
	a.closers = append(a.closers, pub.Close)
	return pub, nil
}

func (a *app) pipeline(ctx context.Context) (*service.Pipeline, error) {
	completer, err := a.completer(ctx)
	if err != nil {
		return nil, err
	}

	pub, err := a.publisher()
	if err != nil {
		return nil, err
	}

	p := a.cfg.Pipeline
	images := imagegen.New(imagegen.Settings{
		APIKey:         a.cfg.Image.APIKey,
		BaseURL:        a.cfg.Image.BaseURL,
		Model:          a.cfg.Image.Model,
		PlaceholderURL: a.cfg.Image.PlaceholderURL,
		Timeout:        a.cfg.Image.Timeout,
	})

	assets := asset.New(images, a.logger, asset.Options{
		Attempts:       p.ImageAttempts,
		Retry:          pacing.Fixed{Delay: p.RetryDelay},
		PlaceholderURL: a.cfg.Image.PlaceholderURL,
	})

	planner := imageprompt.NewPlanner(completer, a.logger, imageprompt.Options{
		Threshold:   p.SimilarityThreshold,
		MaxAttempts: p.DiversityAttempts,
	})

	return service.NewPipeline(
		a.cache,
		draft.New(completer, a.logger),
		planner,
		assets,
		pub,
		a.logger,
		service.PipelineOptions{GenerateCover: p.CoverEnabled()},
	), nil
}

func (a *app) batchPolicy() pacing.Policy {
	if a.cfg.Pipeline.BatchRPM > 0 {
		return pacing.NewTokenBucket(a.cfg.Pipeline.BatchRPM, 1)
	}
	return pacing.Fixed{Delay: a.cfg.Pipeline.BatchDelay}
}

func (a *app) insights(ctx context.Context) (*service.InsightService, error) {
	completer, err := a.completer(ctx)
	if err != nil {
		return nil, err
	}

	p := a.cfg.Pipeline
	analyzer := analysis.NewAnalyzer(completer, a.logger, analysis.AnalyzerOptions{
		ContentLimit:        p.ContentLimit,
		EnrichBelow:         p.EnrichBelow,
		Fetcher:             analysis.ReadabilityFetcher{Timeout: p.FetchTimeout},
		Lenient:             p.LenientJSON,
		RequireAllSummaries: p.RequireAllSummaries,
	})

	return service.NewInsightService(
		analyzer,
		analysis.NewSynthesizer(completer, a.logger, p.LenientJSON),
		a.logger,
	), nil
}

func (a *app) source(path string) (service.Source, error) {
	s := a.cfg.Source
	if path == "" {
		path = s.File
	}
	if path != "" {
		return file.New(path), nil
	}
	if s.BaseURL == "" {
		return nil, fmt.Errorf("no article source configured: set source.file or source.base_url")
	}

	return feed.New(feed.Config{
		BaseURL:        s.BaseURL,
		PageSize:       s.PageSize,
		Timeout:        s.Timeout,
		MaxAttempts:    s.MaxAttempts,
		InitialBackoff: s.InitialBackoff,
		MaxBackoff:     s.MaxBackoff,
	}, a.logger), nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}
