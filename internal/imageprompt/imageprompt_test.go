package imageprompt

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/llm"
)

type fakeCompleter struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompleter) Complete(context.Context, llm.Request) (string, error) {
	f.calls++
	return f.response, f.err
}

func newPlanner(f *fakeCompleter) *Planner {
	return NewPlanner(f, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{})
}

const (
	promptA = "一位程序员在深夜的工位前揉着眼睛，屏幕蓝光映在脸上，冷色调"
	promptB = "阳光洒进老旧的火车车厢，乘客望向窗外的麦田，胶片质感"
)

func assertNoSimilarPairs(t *testing.T, v Validator, prompts []string) {
	t.Helper()
	for i := range prompts {
		for j := i + 1; j < len(prompts); j++ {
			assert.False(t, v.Similar(prompts[i], prompts[j]), "prompts %d and %d are similar", i, j)
		}
	}
}

func TestValidate_ReplacesOnlyLaterDuplicate(t *testing.T) {
	v := NewValidator(0, 0)
	fb := &Fallbacks{}

	out, replaced := v.Validate([]string{promptA, promptA, promptB}, fb.Next)

	require.Len(t, out, 3)
	assert.Equal(t, 1, replaced)
	assert.Equal(t, promptA, out[0])
	assert.NotEqual(t, promptA, out[1])
	assert.Equal(t, FallbackPrompt(0), out[1])
	assert.Equal(t, promptB, out[2])
	assertNoSimilarPairs(t, v, out)
}

func TestValidate_NormalizedDuplicate(t *testing.T) {
	v := NewValidator(0, 0)
	assert.True(t, v.Similar("Sunset over the Lake!", "sunset over the lake"))
	assert.True(t, v.Similar("海边，日落。", "海边 日落"))
}

func TestSimilar_SharedVocabulary(t *testing.T) {
	a := "清晨的海边，老人正在散步，画面安静"
	b := "清晨时分的海边，一位老人独自钓鱼"
	c := "清晨的海边，渔船刚刚靠岸"

	v := NewValidator(3, 0)
	assert.True(t, v.Similar(a, b), "清晨 海边 老人 are shared")
	assert.False(t, v.Similar(a, c), "only two terms shared")

	strict := NewValidator(2, 0)
	assert.True(t, strict.Similar(a, c))
}

func TestValidate_AttemptsAreBounded(t *testing.T) {
	v := NewValidator(0, 4)
	calls := 0
	stubborn := func() string {
		calls++
		return promptA
	}

	out, replaced := v.Validate([]string{promptA, promptA}, stubborn)
	assert.Equal(t, 1, replaced)
	assert.Equal(t, 4, calls)
	assert.Equal(t, []string{promptA, promptA}, out, "last substitute is accepted after the bound")
}

func TestValidate_RechecksAgainstLaterPrompts(t *testing.T) {
	v := NewValidator(0, 0)
	values := []string{promptB, FallbackPrompt(3)}
	next := func() string {
		s := values[0]
		values = values[1:]
		return s
	}

	out, _ := v.Validate([]string{promptA, promptA, promptB}, next)
	assert.Equal(t, FallbackPrompt(3), out[1], "a substitute equal to a later prompt is rejected")
	assertNoSimilarPairs(t, v, out)
}

func TestPad_SkipsFallbacksSimilarToKeptPrompts(t *testing.T) {
	v := NewValidator(0, 0)
	fallbacks := &Fallbacks{}

	out, padded := v.Pad([]string{FallbackPrompt(0)}, 3, fallbacks.Next)
	assert.Equal(t, 2, padded)
	assert.Equal(t, []string{FallbackPrompt(0), FallbackPrompt(1), FallbackPrompt(2)}, out)
}

func TestPad_RejectsWrappedFallbacks(t *testing.T) {
	v := NewValidator(0, 0)
	kept := []string{FallbackPrompt(0), FallbackPrompt(1)}
	require.True(t, v.Similar(FallbackPrompt(0), FallbackPrompt(len(scenarios))))

	fallbacks := &Fallbacks{next: len(scenarios)}
	out, _ := v.Pad(kept, 3, fallbacks.Next)
	assert.Equal(t, FallbackPrompt(len(scenarios)+2), out[2])
	assertNoSimilarPairs(t, v, out)
}

func TestPad_AttemptsAreBounded(t *testing.T) {
	v := NewValidator(0, 4)
	calls := 0
	stubborn := func() string {
		calls++
		return promptA
	}

	out, padded := v.Pad([]string{promptA}, 3, stubborn)
	assert.Equal(t, 2, padded)
	assert.Equal(t, 8, calls)
	assert.Equal(t, []string{promptA, promptA, promptA}, out)
}

func TestPad_LeavesFullSetAlone(t *testing.T) {
	v := NewValidator(0, 0)
	out, padded := v.Pad([]string{promptA, promptB}, 2, func() string { panic("no draw expected") })
	assert.Zero(t, padded)
	assert.Equal(t, []string{promptA, promptB}, out)
}

func TestFallbacksAreMutuallyDistinct(t *testing.T) {
	v := NewValidator(0, 0)
	prompts := make([]string, len(scenarios))
	for i := range prompts {
		prompts[i] = FallbackPrompt(i)
	}
	assertNoSimilarPairs(t, v, prompts)
	assert.NotEqual(t, FallbackPrompt(0), FallbackPrompt(len(scenarios)))
}

func TestParseCandidates(t *testing.T) {
	response := "以下是配图：\n1. " + promptA + "\n2、短\n3) " + promptB + "\n- 第三张图：城市天际线上的烟花与人群欢呼\n4. 多余的一条描述内容也很长很长"

	got := ParseCandidates(response, 3)
	assert.Equal(t, []string{promptA, promptB, "第三张图：城市天际线上的烟花与人群欢呼"}, got)
}

func TestPlan_ExactCount(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		n        int
	}{
		{name: "enough candidates", response: "1. " + promptA + "\n2. " + promptB, n: 2},
		{name: "padding", response: "1. " + promptA, n: 3},
		{name: "duplicates", response: "1. " + promptA + "\n2. " + promptA + "\n3. " + promptA, n: 3},
		{name: "completion failure", err: errors.New("503"), n: 4},
		{name: "garbage", response: "ok", n: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := newPlanner(&fakeCompleter{response: tt.response, err: tt.err})
			topic := &domain.Topic{ID: "t", TopicInsight: domain.TopicInsight{Title: "选题"}}

			prompts := planner.Plan(context.Background(), "标题", "正文", tt.n, topic)
			require.Len(t, prompts, tt.n)
			assertNoSimilarPairs(t, planner.validator, prompts)
		})
	}
}

func TestPlan_FailureUsesFallbackSequence(t *testing.T) {
	planner := newPlanner(&fakeCompleter{err: errors.New("down")})

	prompts := planner.Plan(context.Background(), "标题", "正文", 3, nil)
	assert.Equal(t, []string{FallbackPrompt(0), FallbackPrompt(1), FallbackPrompt(2)}, prompts)
}

func TestPlan_ZeroSkipsCompletion(t *testing.T) {
	fake := &fakeCompleter{}
	assert.Empty(t, newPlanner(fake).Plan(context.Background(), "t", "c", 0, nil))
	assert.Zero(t, fake.calls)
}
