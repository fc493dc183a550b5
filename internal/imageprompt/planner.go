// Package imageprompt plans a set of mutually distinct image prompts for a
// draft.
package imageprompt

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/llm"
)

const (
	minPromptRunes     = 10
	contentSampleRunes = 800
	plannerTemperature = 0.9
)

const plannerSystemPrompt = `你是一名视觉设计师，负责为公众号文章设计配图。每条配图描述都要能直接交给 AI 绘图模型使用。`

var numberingRe = regexp.MustCompile(`^\s*(?:(?:prompt|图|配图)?\s*\d+\s*[.)、:：\]]|[-*•])\s*`)

type Options struct {
	Threshold   int
	MaxAttempts int
}

type Planner struct {
	llm       llm.Completer
	validator Validator
	logger    *slog.Logger
}

func NewPlanner(completer llm.Completer, logger *slog.Logger, opts Options) *Planner {
	return &Planner{
		llm:       completer,
		validator: NewValidator(opts.Threshold, opts.MaxAttempts),
		logger:    logger.With("stage", string(domain.StagePrompts)),
	}
}

// Plan returns exactly n prompts. A failed completion is not fatal: the
// set is then made of fallback scenarios. Diversity is best effort: past the
// size of the fallback table, fallbacks differ from earlier rows only in a
// mood variant and are accepted once the attempt bound is spent.
func (p *Planner) Plan(ctx context.Context, title, content string, n int, topic *domain.Topic) []string {
	if n <= 0 {
		return nil
	}

	var candidates []string
	response, err := p.llm.Complete(ctx, llm.Request{
		Messages:    llm.Prompt(plannerSystemPrompt, buildPlannerPrompt(title, content, n, topic)),
		Temperature: plannerTemperature,
	})
	if err != nil {
		p.logger.Warn("prompt completion failed, using fallback scenarios", "count", n, "error", err)
	} else {
		candidates = ParseCandidates(response, n)
	}

	fallbacks := &Fallbacks{}
	prompts, replaced := p.validator.Validate(candidates, fallbacks.Next)
	if replaced > 0 {
		p.logger.Info("replaced similar prompts", "replaced", replaced)
	}

	prompts, padded := p.validator.Pad(prompts, n, fallbacks.Next)
	if padded > 0 {
		p.logger.Info("padded prompt set with fallbacks", "padded", padded, "requested", n)
	}

	return prompts
}

// ParseCandidates splits a completion into at most n prompt lines, with list
// numbering removed and short lines dropped.
func ParseCandidates(response string, n int) []string {
	var out []string
	for _, line := range strings.Split(response, "\n") {
		if len(out) == n {
			break
		}
		line = strings.TrimSpace(numberingRe.ReplaceAllString(strings.TrimSpace(line), ""))
		line = strings.Trim(line, `"“”`)
		if utf8.RuneCountInString(line) < minPromptRunes {
			continue
		}
		out = append(out, line)
	}
	return out
}

func buildPlannerPrompt(title, content string, n int, topic *domain.Topic) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "文章标题：%s\n", title)
	if topic != nil && topic.Title != "" {
		fmt.Fprintf(&sb, "所属选题：%s\n", topic.Title)
		if topic.AudienceScene.Audience != "" {
			fmt.Fprintf(&sb, "目标读者：%s\n", topic.AudienceScene.Audience)
		}
	}
	fmt.Fprintf(&sb, "文章内容节选：\n%s\n\n", sample(content, contentSampleRunes))
	fmt.Fprintf(&sb, "请为这篇文章设计 %d 张配图，每张配图一行描述，按 1. 2. 3. 编号。\n", n)
	sb.WriteString("要求：各张配图必须在时间、地点、人物、视角、情绪、动作六个维度上明显不同，不要重复同一场景；")
	sb.WriteString("每条描述不少于 20 字，只输出配图描述，不要输出其他内容。")
	return sb.String()
}

func sample(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
