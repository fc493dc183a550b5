package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/llm"
)

const (
	MaxInsights           = 10
	synthesisTemperature  = 0.7
	minExpectedConfidence = 60
	maxConfidence         = 100
)

const synthesisSystemPrompt = `你是一名公众号选题策划专家，擅长从爆文数据中提炼选题洞察。你只输出 JSON。`

// Synthesizer derives ranked topic insights from article summaries.
type Synthesizer struct {
	llm     llm.Completer
	lenient bool
	logger  *slog.Logger
}

func NewSynthesizer(completer llm.Completer, logger *slog.Logger, lenient bool) *Synthesizer {
	return &Synthesizer{
		llm:     completer,
		lenient: lenient,
		logger:  logger.With("stage", string(domain.StageInsight)),
	}
}

// Synthesize returns at most MaxInsights insights ordered by descending
// confidence. The full response is sorted before the cap is applied.
func (s *Synthesizer) Synthesize(ctx context.Context, summaries []domain.ArticleSummary, stats domain.AggregateStats) ([]domain.TopicInsight, error) {
	payload, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, domain.NewStageError(domain.StageInsight, fmt.Errorf("encode summaries: %w", err))
	}

	content, err := s.llm.Complete(ctx, llm.Request{
		Messages:    llm.Prompt(synthesisSystemPrompt, buildSynthesisPrompt(string(payload), stats)),
		Temperature: synthesisTemperature,
	})
	if err != nil {
		return nil, domain.NewStageError(domain.StageInsight, fmt.Errorf("request completion: %w", err))
	}

	insights, skipped, err := llm.DecodeArray[domain.TopicInsight](content, "insights", s.lenient)
	if err != nil {
		return nil, domain.NewStageError(domain.StageInsight, err)
	}
	if skipped > 0 {
		s.logger.Warn("skipped malformed insights", "skipped", skipped)
	}

	for i, in := range insights {
		s.validate(i, in)
	}

	return s.rank(insights), nil
}

func (s *Synthesizer) rank(insights []domain.TopicInsight) []domain.TopicInsight {
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Confidence > insights[j].Confidence
	})
	if len(insights) > MaxInsights {
		s.logger.Info("capping insights", "returned", len(insights), "kept", MaxInsights)
		insights = insights[:MaxInsights]
	}
	return insights
}

func (s *Synthesizer) validate(i int, in domain.TopicInsight) {
	if strings.TrimSpace(in.Title) == "" {
		s.logger.Warn("insight missing title", "index", i)
	}
	if strings.TrimSpace(in.Description) == "" {
		s.logger.Warn("insight missing description", "index", i, "title", in.Title)
	}
	if in.Confidence < minExpectedConfidence || in.Confidence > maxConfidence {
		s.logger.Warn("insight confidence out of range", "index", i, "title", in.Title, "confidence", in.Confidence)
	}
}

func buildSynthesisPrompt(payload string, stats domain.AggregateStats) string {
	var sb strings.Builder
	sb.WriteString("以下是一组爆款文章的分析结果：\n\n")
	sb.WriteString(payload)
	fmt.Fprintf(&sb, "\n\n整体数据：共 %d 篇文章，平均阅读 %.0f，平均点赞 %.0f，平均互动率 %.2f%%。\n",
		stats.TotalArticles, stats.AvgReads, stats.AvgLikes, stats.AvgEngagement)
	sb.WriteString(`
请综合以上信息，提炼不超过 10 个值得创作的选题洞察，按照以下 JSON 格式返回：
{
  "insights": [
    {
      "title": "选题标题",
      "description": "选题说明",
      "confidence": 85,
      "decisionStage": {"stage": "认知阶段/考虑阶段/决策阶段", "reason": "判断依据"},
      "audienceScene": {"audience": "目标人群", "scene": "阅读场景"},
      "demandPainPoint": {"emotionalPain": "情绪痛点", "realisticPain": "现实痛点", "expectations": "期望"},
      "tags": ["标签"]
    }
  ]
}
confidence 为 60 到 100 之间的数字，代表选题成功的把握。`)
	return sb.String()
}
