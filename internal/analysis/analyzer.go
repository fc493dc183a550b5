// Package analysis turns collected articles into structured summaries and
// summaries into ranked topic insights.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/llm"
)

const (
	DefaultContentLimit = 2000
	analysisTemperature = 0.3
)

const analysisSystemPrompt = `你是一名资深的公众号内容分析师。你只输出 JSON，不输出任何解释或 markdown 标记。`

type AnalyzerOptions struct {
	// ContentLimit caps the runes of content sent per article.
	ContentLimit int
	// EnrichBelow triggers a page fetch for articles whose content has fewer
	// runes. Zero disables enrichment.
	EnrichBelow int
	Fetcher     ContentFetcher
	Lenient     bool
	// RequireAllSummaries fails the call when the response does not hold
	// exactly one summary per article. Otherwise a mismatch is logged.
	RequireAllSummaries bool
}

// Analyzer produces one ArticleSummary per collected article.
type Analyzer struct {
	llm    llm.Completer
	opts   AnalyzerOptions
	logger *slog.Logger
}

func NewAnalyzer(completer llm.Completer, logger *slog.Logger, opts AnalyzerOptions) *Analyzer {
	if opts.ContentLimit <= 0 {
		opts.ContentLimit = DefaultContentLimit
	}
	return &Analyzer{
		llm:    completer,
		opts:   opts,
		logger: logger.With("stage", string(domain.StageAnalysis)),
	}
}

type analysisInput struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
	Reads   int    `json:"reads"`
}

// Analyze sends all articles in a single completion request. Summaries come
// back in input order. Any parse failure fails the whole call.
func (a *Analyzer) Analyze(ctx context.Context, articles []domain.RawArticle) ([]domain.ArticleSummary, error) {
	if len(articles) == 0 {
		return nil, nil
	}

	inputs := make([]analysisInput, len(articles))
	for i, art := range articles {
		inputs[i] = analysisInput{
			Index:   i + 1,
			Title:   art.Title,
			Content: truncateRunes(a.enrich(ctx, art), a.opts.ContentLimit),
			Likes:   art.Likes,
			Reads:   art.Reads,
		}
	}

	payload, err := json.MarshalIndent(inputs, "", "  ")
	if err != nil {
		return nil, domain.NewStageError(domain.StageAnalysis, fmt.Errorf("encode articles: %w", err))
	}

	a.logger.Info("analyzing articles", "count", len(articles))

	content, err := a.llm.Complete(ctx, llm.Request{
		Messages:    llm.Prompt(analysisSystemPrompt, buildAnalysisPrompt(string(payload), len(articles))),
		Temperature: analysisTemperature,
	})
	if err != nil {
		return nil, domain.NewStageError(domain.StageAnalysis, fmt.Errorf("request completion: %w", err))
	}

	summaries, skipped, err := llm.DecodeArray[domain.ArticleSummary](content, "summaries", a.opts.Lenient)
	if err != nil {
		return nil, domain.NewStageError(domain.StageAnalysis, err)
	}
	if skipped > 0 {
		a.logger.Warn("skipped malformed summaries", "skipped", skipped)
	}

	if len(summaries) != len(articles) {
		if a.opts.RequireAllSummaries {
			return nil, domain.NewStageError(domain.StageAnalysis,
				fmt.Errorf("got %d summaries for %d articles: %w", len(summaries), len(articles), domain.ErrUpstreamParse))
		}
		a.logger.Warn("summary count mismatch", "summaries", len(summaries), "articles", len(articles))
	}

	for i, s := range summaries {
		a.warnMissing(i, s)
	}

	a.logger.Info("analysis completed", "summaries", len(summaries))
	return summaries, nil
}

// enrich returns the article text, replacing short content with the fetched
// page when possible.
func (a *Analyzer) enrich(ctx context.Context, art domain.RawArticle) string {
	if a.opts.Fetcher == nil || a.opts.EnrichBelow <= 0 || art.URL == "" {
		return art.Content
	}
	if utf8.RuneCountInString(art.Content) >= a.opts.EnrichBelow {
		return art.Content
	}

	text, err := a.opts.Fetcher.Fetch(ctx, art.URL)
	if err != nil {
		a.logger.Warn("content fetch failed, using collected text", "url", art.URL, "error", err)
		return art.Content
	}
	if utf8.RuneCountInString(text) <= utf8.RuneCountInString(art.Content) {
		return art.Content
	}
	return text
}

func (a *Analyzer) warnMissing(i int, s domain.ArticleSummary) {
	var missing []string
	if strings.TrimSpace(s.TargetAudience) == "" {
		missing = append(missing, "targetAudience")
	}
	if strings.TrimSpace(s.Scenario) == "" {
		missing = append(missing, "scenario")
	}
	if strings.TrimSpace(s.PainPoint) == "" {
		missing = append(missing, "painPoint")
	}
	if len(missing) > 0 {
		a.logger.Warn("summary missing fields", "index", i, "title", s.Title, "fields", missing)
	}
}

func buildAnalysisPrompt(payload string, count int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "下面是 %d 篇公众号文章（含点赞数和阅读数），请逐篇进行深度分析：\n\n", count)
	sb.WriteString(payload)
	sb.WriteString(`

请严格按照以下 JSON 格式返回，summaries 数组的顺序和数量必须与输入文章一致：
{
  "summaries": [
    {
      "title": "文章标题",
      "keyPoints": ["核心观点"],
      "keywords": ["关键词"],
      "highlights": ["亮点"],
      "targetAudience": "目标读者",
      "scenario": "阅读场景",
      "painPoint": "解决的痛点",
      "engagementAnalysis": "结合点赞和阅读数据分析受欢迎的原因",
      "writingStyle": "写作风格",
      "contentStructure": "内容结构"
    }
  ]
}`)
	return sb.String()
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
