// Package asset turns image prompts into image references. Individual
// failures degrade to placeholders and never fail the article.
package asset

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/imagegen"
	"article_pipeline/internal/pacing"
)

const (
	DefaultAttempts   = 3
	DefaultRetryDelay = time.Second
	coverRatio        = "2.35:1"
	coverContentRunes = 500
)

type Options struct {
	// Attempts per image, including the first.
	Attempts int
	// Retry is waited on between attempts.
	Retry          pacing.Policy
	PlaceholderURL string
	Now            func() time.Time
}

type Generator struct {
	images      imagegen.Generator
	placeholder *imagegen.Placeholder
	attempts    int
	retry       pacing.Policy
	now         func() time.Time
	logger      *slog.Logger
}

func New(images imagegen.Generator, logger *slog.Logger, opts Options) *Generator {
	if opts.Attempts <= 0 {
		opts.Attempts = DefaultAttempts
	}
	if opts.Retry == nil {
		opts.Retry = pacing.Fixed{Delay: DefaultRetryDelay}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{
		images:      images,
		placeholder: imagegen.NewPlaceholder(opts.PlaceholderURL, "fallback"),
		attempts:    opts.Attempts,
		retry:       opts.Retry,
		now:         opts.Now,
		logger:      logger.With("stage", string(domain.StageAssets)),
	}
}

// GenerateImages requests every prompt concurrently and waits for all of
// them. The result has one image per prompt, in prompt order.
func (g *Generator) GenerateImages(ctx context.Context, prompts []string, style, ratio string) []domain.Image {
	if len(prompts) == 0 {
		return nil
	}

	size := imagegen.SizeForRatio(ratio)
	suffix := StyleSuffix(style)
	images := make([]domain.Image, len(prompts))

	var eg errgroup.Group
	for i, prompt := range prompts {
		i, prompt := i, prompt
		eg.Go(func() error {
			images[i] = g.generateOne(ctx, i, prompt+suffix, size)
			return nil
		})
	}
	_ = eg.Wait()

	placeholders := 0
	for _, img := range images {
		if img.Placeholder {
			placeholders++
		}
	}
	g.logger.Info("images generated", "count", len(images), "placeholders", placeholders)

	return images
}

func (g *Generator) generateOne(ctx context.Context, index int, prompt, size string) domain.Image {
	var lastErr error
	for attempt := 1; attempt <= g.attempts; attempt++ {
		if attempt > 1 {
			if err := g.retry.Wait(ctx); err != nil {
				lastErr = err
				break
			}
		}

		url, err := g.images.Generate(ctx, imagegen.Request{Prompt: prompt, Size: size, Count: 1})
		if err == nil {
			return domain.Image{URL: url, Prompt: prompt}
		}

		lastErr = fmt.Errorf("image %d attempt %d: %w: %w", index, attempt, domain.ErrAssetGeneration, err)
		g.logger.Warn("image request failed", "index", index, "attempt", attempt, "error", err)
	}

	g.logger.Warn("using placeholder image", "index", index, "error", lastErr)
	return domain.Image{
		URL:         g.placeholder.URL(g.placeholderSeed(index), size),
		Prompt:      prompt,
		Placeholder: true,
	}
}

// placeholderSeed is unique per call; it is not reproducible across runs.
func (g *Generator) placeholderSeed(index int) string {
	token := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%d-%s", g.now().UnixMilli(), index, token)
}

// GenerateCover makes a single attempt at a cover image. It returns nil
// when the request fails.
func (g *Generator) GenerateCover(ctx context.Context, title, content, style string) *domain.Image {
	rule, template := CoverTemplate(title, clip(content, coverContentRunes))
	prompt := fmt.Sprintf(template, title) + StyleSuffix(style)

	url, err := g.images.Generate(ctx, imagegen.Request{
		Prompt: prompt,
		Size:   imagegen.SizeForRatio(coverRatio),
		Count:  1,
	})
	if err != nil {
		g.logger.Warn("cover generation failed, continuing without cover", "rule", rule, "error", err)
		return nil
	}

	g.logger.Info("cover generated", "rule", rule)
	return &domain.Image{URL: url, Prompt: prompt}
}

func clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
