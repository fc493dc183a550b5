package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"article_pipeline/internal/domain"
)

// InsightReport is the outcome of one discovery run.
type InsightReport struct {
	SourceID  string                  `json:"sourceId,omitempty"`
	Articles  []domain.RawArticle     `json:"articles"`
	Summaries []domain.ArticleSummary `json:"summaries"`
	Stats     domain.AggregateStats   `json:"stats"`
	Insights  []domain.TopicInsight   `json:"insights"`
	Duration  time.Duration           `json:"duration"`
}

type InsightService struct {
	analyzer    Analyzer
	synthesizer Synthesizer
	logger      *slog.Logger
}

func NewInsightService(analyzer Analyzer, synthesizer Synthesizer, logger *slog.Logger) *InsightService {
	return &InsightService{
		analyzer:    analyzer,
		synthesizer: synthesizer,
		logger:      logger.With("component", "insights"),
	}
}

// Discover fetches articles from source and runs Run on them.
func (s *InsightService) Discover(ctx context.Context, source Source, maxPages int) (*InsightReport, error) {
	s.logger.Info("fetching articles", "source", source.ID(), "source_name", source.Name(), "max_pages", maxPages)

	articles, err := source.FetchArticles(ctx, maxPages)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	report, err := s.Run(ctx, articles)
	if report != nil {
		report.SourceID = source.ID()
	}
	return report, err
}

// Run analyses articles and synthesizes insights. When a stage fails the
// partial report is still returned so the caller can retry without
// collecting the articles again.
func (s *InsightService) Run(ctx context.Context, articles []domain.RawArticle) (*InsightReport, error) {
	startTime := time.Now()
	report := &InsightReport{
		Articles: articles,
		Stats:    domain.ComputeStats(articles),
	}

	summaries, err := s.analyzer.Analyze(ctx, articles)
	if err != nil {
		report.Duration = time.Since(startTime)
		return report, err
	}
	report.Summaries = summaries

	insights, err := s.synthesizer.Synthesize(ctx, summaries, report.Stats)
	if err != nil {
		report.Duration = time.Since(startTime)
		return report, err
	}
	report.Insights = insights
	report.Duration = time.Since(startTime)

	s.logger.Info("insights synthesized",
		"articles", len(articles),
		"summaries", len(summaries),
		"insights", len(insights),
		"duration", report.Duration,
	)
	return report, nil
}
