// Package service wires the generation stages into the single-article
// pipeline, the batch loop and insight discovery.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/draft"
	"article_pipeline/internal/render"
)

type PipelineOptions struct {
	GenerateCover bool
}

type Pipeline struct {
	cache     Cache
	drafts    DraftGenerator
	planner   PromptPlanner
	assets    AssetGenerator
	publisher Publisher
	opts      PipelineOptions
	logger    *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewPipeline builds a pipeline. publisher may be nil.
func NewPipeline(
	cache Cache,
	drafts DraftGenerator,
	planner PromptPlanner,
	assets AssetGenerator,
	publisher Publisher,
	logger *slog.Logger,
	opts PipelineOptions,
) *Pipeline {
	return &Pipeline{
		cache:     cache,
		drafts:    drafts,
		planner:   planner,
		assets:    assets,
		publisher: publisher,
		opts:      opts,
		logger:    logger.With("component", "pipeline"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Generate returns the cached article for params when present, otherwise
// runs draft, prompt planning and asset generation and caches the result.
// Only draft failures are returned; image and cover failures degrade.
func (p *Pipeline) Generate(ctx context.Context, params domain.GenerationParameters) (*domain.GeneratedArticle, error) {
	params = params.Clone()
	fp := domain.Fingerprint(params)
	logger := p.logger.With("fingerprint", fp)

	if cached, ok := p.cache.Get(ctx, fp); ok {
		logger.Info("serving cached article", "article_id", cached.ID)
		p.publish(ctx, fp, cached, true)
		return cached, nil
	}

	startTime := time.Now()

	d, err := p.drafts.Generate(ctx, params)
	if err != nil {
		return nil, err
	}

	n := params.ImageCount
	if n <= 0 {
		n = draft.CalculateImageCount(d.WordCount)
		logger.Debug("image count derived from word count", "word_count", d.WordCount, "images", n)
	}

	prompts := p.planner.Plan(ctx, d.Title, d.Content, n, &params.Topic)

	var (
		images []domain.Image
		cover  *domain.Image
		eg     errgroup.Group
	)
	eg.Go(func() error {
		images = p.assets.GenerateImages(ctx, prompts, params.ImageStyle, params.ImageRatio)
		return nil
	})
	if p.opts.GenerateCover {
		eg.Go(func() error {
			cover = p.assets.GenerateCover(ctx, d.Title, d.Content, params.ImageStyle)
			return nil
		})
	}
	_ = eg.Wait()

	html, err := render.HTML(d.Content)
	if err != nil {
		logger.Warn("markdown rendering failed", "error", err)
	}

	article := &domain.GeneratedArticle{
		ID:          p.newID(),
		Title:       d.Title,
		Content:     d.Content,
		ContentHTML: html,
		Images:      images,
		Cover:       cover,
		WordCount:   d.WordCount,
		ReadingTime: d.ReadingTime,
		TopicID:     params.Topic.ID,
		CreatedAt:   p.now().UTC(),
		Parameters:  params,
	}

	p.cache.Put(ctx, fp, article, params)
	p.publish(ctx, fp, article, false)

	logger.Info("article generated",
		"article_id", article.ID,
		"title", article.Title,
		"images", len(article.Images),
		"cover", article.Cover != nil,
		"duration", time.Since(startTime),
	)
	return article, nil
}

func (p *Pipeline) publish(ctx context.Context, fp string, article *domain.GeneratedArticle, cached bool) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, fp, article, cached); err != nil {
		p.logger.Warn("publish failed", "fingerprint", fp, "article_id", article.ID, "error", err)
	}
}
