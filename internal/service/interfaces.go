package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"article_pipeline/internal/domain"
)

type Cache interface {
	Get(ctx context.Context, fingerprint string) (*domain.GeneratedArticle, bool)
	Put(ctx context.Context, fingerprint string, article *domain.GeneratedArticle, params domain.GenerationParameters)
}

type DraftGenerator interface {
	Generate(ctx context.Context, params domain.GenerationParameters) (domain.Draft, error)
}

type PromptPlanner interface {
	Plan(ctx context.Context, title, content string, n int, topic *domain.Topic) []string
}

type AssetGenerator interface {
	GenerateImages(ctx context.Context, prompts []string, style, ratio string) []domain.Image
	GenerateCover(ctx context.Context, title, content, style string) *domain.Image
}

type ArticleGenerator interface {
	Generate(ctx context.Context, params domain.GenerationParameters) (*domain.GeneratedArticle, error)
}

type Source interface {
	ID() string
	Name() string
	FetchArticles(ctx context.Context, maxPages int) ([]domain.RawArticle, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, articles []domain.RawArticle) ([]domain.ArticleSummary, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, summaries []domain.ArticleSummary, stats domain.AggregateStats) ([]domain.TopicInsight, error)
}

type Publisher interface {
	Publish(ctx context.Context, fingerprint string, article *domain.GeneratedArticle, cached bool) error
	Close() error
}
