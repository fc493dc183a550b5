// Package draft writes article text for a topic and derives its title and
// reading metrics.
package draft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/llm"
)

const (
	draftTemperature    = 0.8
	referenceRunesLimit = 1500
)

const draftSystemPrompt = `你是一名经验丰富的公众号作者，擅长写出有深度、有温度、读者愿意转发的文章。请直接输出 Markdown 正文。`

type Generator struct {
	llm    llm.Completer
	logger *slog.Logger
}

func New(completer llm.Completer, logger *slog.Logger) *Generator {
	return &Generator{
		llm:    completer,
		logger: logger.With("stage", string(domain.StageDraft)),
	}
}

// Generate writes one draft. Completion errors are returned as a
// draft_generation StageError.
func (g *Generator) Generate(ctx context.Context, p domain.GenerationParameters) (domain.Draft, error) {
	g.logger.Info("generating draft",
		"topic_id", p.Topic.ID,
		"mode", p.Mode,
		"length", p.Length,
		"unique_angle", p.UniqueAngle,
	)

	content, err := g.llm.Complete(ctx, llm.Request{
		Messages:    llm.Prompt(draftSystemPrompt, BuildPrompt(p)),
		Temperature: draftTemperature,
	})
	if err != nil {
		return domain.Draft{}, domain.NewStageError(domain.StageDraft, fmt.Errorf("request completion: %w", err))
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Draft{}, domain.NewStageError(domain.StageDraft,
			fmt.Errorf("empty completion: %w", domain.ErrUpstreamParse))
	}

	wc := CountWords(content)
	d := domain.Draft{
		Title:       resolveTitle(p, content),
		Content:     content,
		WordCount:   wc,
		ReadingTime: ReadingTime(wc),
	}

	g.logger.Info("draft generated", "title", d.Title, "word_count", d.WordCount)
	return d, nil
}

func resolveTitle(p domain.GenerationParameters, content string) string {
	if p.Mode == domain.ModeReference && len(p.ReferenceArticles) > 0 {
		return p.ReferenceArticles[0].Title
	}
	return ExtractTitle(content)
}

// BuildPrompt assembles the user prompt for p.
func BuildPrompt(p domain.GenerationParameters) string {
	topic := p.Topic
	stage := stageRecommendation(topic.DecisionStage.Stage)

	var sb strings.Builder
	fmt.Fprintf(&sb, "【选题】%s\n", topic.Title)
	if topic.Description != "" {
		fmt.Fprintf(&sb, "【选题说明】%s\n", topic.Description)
	}
	if topic.AudienceScene.Audience != "" {
		fmt.Fprintf(&sb, "【目标读者】%s", topic.AudienceScene.Audience)
		if topic.AudienceScene.Scene != "" {
			fmt.Fprintf(&sb, "（%s）", topic.AudienceScene.Scene)
		}
		sb.WriteString("\n")
	}
	if pain := topic.DemandPainPoint; pain.Emotional != "" || pain.Realistic != "" {
		fmt.Fprintf(&sb, "【读者痛点】情绪：%s；现实：%s\n", pain.Emotional, pain.Realistic)
		if pain.Expectations != "" {
			fmt.Fprintf(&sb, "【读者期望】%s\n", pain.Expectations)
		}
	}
	if len(topic.Tags) > 0 {
		fmt.Fprintf(&sb, "【标签】%s\n", strings.Join(topic.Tags, "、"))
	}

	sb.WriteString("\n【写作建议】\n")
	fmt.Fprintf(&sb, "- 语气：%s；%s\n", stage.Tone, audienceTone(topic.AudienceScene.Audience))
	fmt.Fprintf(&sb, "- 推荐结构：%s\n", stage.Structure)
	fmt.Fprintf(&sb, "- 写作风格：%s\n", styleDescription(p.Style))
	if p.Length != "" {
		fmt.Fprintf(&sb, "- 篇幅：%s 字\n", p.Length)
	}
	if p.UniqueAngle != "" {
		fmt.Fprintf(&sb, "- 切入角度：%s\n", p.UniqueAngle)
	}

	sb.WriteString("\n")
	if p.Mode == domain.ModeReference {
		writeReferenceFraming(&sb, p)
	} else {
		writeOriginalFraming(&sb, p)
	}

	sb.WriteString("\n请先输出一行以 # 开头的标题，再输出正文，使用 Markdown 小标题组织内容。")
	return sb.String()
}

func writeReferenceFraming(sb *strings.Builder, p domain.GenerationParameters) {
	if tmpl, ok := structureTemplates[p.Structure]; ok {
		fmt.Fprintf(sb, "【文章结构】%s\n\n", tmpl)
	}
	if len(p.ReferenceArticles) == 0 {
		sb.WriteString("【创作方式】参考同类爆款文章的常见写法，围绕选题创作一篇全新的文章。\n")
		return
	}

	sb.WriteString("【创作方式】请先分析以下参考文章的选题角度、结构和打动读者的地方，再用自己的语言重新创作，不得照搬原句。\n")
	for i, ref := range p.ReferenceArticles {
		fmt.Fprintf(sb, "\n参考文章 %d：%s\n%s\n", i+1, ref.Title, clip(ref.Content, referenceRunesLimit))
	}
}

func writeOriginalFraming(sb *strings.Builder, p domain.GenerationParameters) {
	if strings.TrimSpace(p.Inspiration) == "" {
		sb.WriteString("【创作方式】原创写作，围绕选题自由展开，观点要鲜明。\n")
		return
	}
	fmt.Fprintf(sb, "【创作方式】原创写作，请以下面的灵感为起点展开成完整文章：\n%s\n", p.Inspiration)
}

func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "……"
}
