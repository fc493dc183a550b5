package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/pacing"
)

// Angles differentiate articles generated for the same topic in one batch.
var Angles = [...]string{
	"实用方法论角度",
	"深度原因剖析角度",
	"真实案例故事角度",
	"行业趋势洞察角度",
	"常见误区澄清角度",
}

// AngleFor returns the unique angle for batch iteration i. After the table
// is exhausted a dimension suffix keeps the angles distinct.
func AngleFor(i int) string {
	angle := Angles[i%len(Angles)]
	if i < len(Angles) {
		return angle
	}
	return fmt.Sprintf("%s（维度 %d）", angle, i/len(Angles)+1)
}

// ProgressFunc receives the percentage of iterations finished, successful
// or not.
type ProgressFunc func(completed, total int, percent float64)

type Batch struct {
	articles ArticleGenerator
	pacing   pacing.Policy
	logger   *slog.Logger
}

func NewBatch(articles ArticleGenerator, policy pacing.Policy, logger *slog.Logger) *Batch {
	if policy == nil {
		policy = pacing.None{}
	}
	return &Batch{
		articles: articles,
		pacing:   policy,
		logger:   logger.With("component", "batch"),
	}
}

// ErrInvalidCount is returned by Run for a negative count.
var ErrInvalidCount = errors.New("batch count must not be negative")

// Run generates up to count articles on topic, one at a time. Failed
// iterations are logged and skipped. Apart from ErrInvalidCount, the only
// error returned is a context error raised while waiting between
// iterations, together with the articles produced so far.
func (b *Batch) Run(
	ctx context.Context,
	topic domain.Topic,
	params domain.GenerationParameters,
	count int,
	progress ProgressFunc,
) ([]*domain.GeneratedArticle, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	b.logger.Info("starting batch", "topic_id", topic.ID, "count", count)

	results := make([]*domain.GeneratedArticle, 0, count)
	failed := 0

	for i := 0; i < count; i++ {
		p := params.Clone()
		p.Topic = topic
		p.UniqueAngle = AngleFor(i)

		article, err := b.articles.Generate(ctx, p)
		if err != nil {
			failed++
			stage, _ := domain.FailedStage(err)
			b.logger.Error("batch item failed",
				"index", i,
				"unique_angle", p.UniqueAngle,
				"stage", stage,
				"error", err,
			)
		} else {
			results = append(results, article)
		}

		if progress != nil {
			progress(i+1, count, float64(i+1)/float64(count)*100)
		}

		if i < count-1 {
			if err := b.pacing.Wait(ctx); err != nil {
				return results, fmt.Errorf("wait between batch items: %w", err)
			}
		}
	}

	b.logger.Info("batch completed",
		"topic_id", topic.ID,
		"requested", count,
		"generated", len(results),
		"failed", failed,
	)
	return results, nil
}
