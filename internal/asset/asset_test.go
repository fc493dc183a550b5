package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"article_pipeline/internal/imagegen"
	"article_pipeline/internal/pacing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeImages fails every request whose prompt contains a failing marker
// for the first failures[marker] calls.
type fakeImages struct {
	mu       sync.Mutex
	failures map[string]int
	calls    map[string]int
	requests []imagegen.Request
}

func newFakeImages(failures map[string]int) *fakeImages {
	return &fakeImages{failures: failures, calls: make(map[string]int)}
}

func (f *fakeImages) Generate(_ context.Context, req imagegen.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)

	for marker, n := range f.failures {
		if strings.Contains(req.Prompt, marker) {
			f.calls[marker]++
			if n < 0 || f.calls[marker] <= n {
				return "", errors.New("image service unavailable")
			}
		}
	}
	return "https://images.example.com/" + strings.SplitN(req.Prompt, "，", 2)[0], nil
}

func newGenerator(images imagegen.Generator) *Generator {
	return New(images, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Retry: pacing.None{},
		Now:   func() time.Time { return time.UnixMilli(1_700_000_000_000) },
	})
}

var prompts = []string{"prompt-one", "prompt-two", "prompt-three"}

func TestGenerateImages_SecondFailsAlways(t *testing.T) {
	images := newFakeImages(map[string]int{"prompt-two": -1})
	g := newGenerator(images)

	got := g.GenerateImages(context.Background(), prompts, "realistic", "16:9")

	require.Len(t, got, 3)
	assert.Equal(t, "https://images.example.com/prompt-one", got[0].URL)
	assert.False(t, got[0].Placeholder)
	assert.True(t, got[1].Placeholder)
	assert.Contains(t, got[1].URL, "/1700000000000-1-")
	assert.True(t, strings.HasSuffix(got[1].URL, "/1792/1024"))
	assert.Equal(t, "https://images.example.com/prompt-three", got[2].URL)
	assert.False(t, got[2].Placeholder)

	assert.Equal(t, DefaultAttempts, images.calls["prompt-two"])
}

func TestGenerateImages_RetrySucceeds(t *testing.T) {
	images := newFakeImages(map[string]int{"prompt-one": 2})
	g := newGenerator(images)

	got := g.GenerateImages(context.Background(), prompts[:1], "auto", "1:1")

	require.Len(t, got, 1)
	assert.False(t, got[0].Placeholder)
	assert.Equal(t, 3, images.calls["prompt-one"])
}

func TestGenerateImages_StyleAndSize(t *testing.T) {
	images := newFakeImages(nil)
	g := newGenerator(images)

	got := g.GenerateImages(context.Background(), prompts[:1], "watercolor", "9:16")

	require.Len(t, images.requests, 1)
	assert.Equal(t, "prompt-one"+styleSuffixes["watercolor"], images.requests[0].Prompt)
	assert.Equal(t, "1024x1792", images.requests[0].Size)
	assert.Equal(t, 1, images.requests[0].Count)
	assert.Equal(t, images.requests[0].Prompt, got[0].Prompt)
}

func TestGenerateImages_PlaceholdersAreDistinct(t *testing.T) {
	images := newFakeImages(map[string]int{"prompt": -1})
	g := newGenerator(images)

	got := g.GenerateImages(context.Background(), prompts, "auto", "")
	seen := map[string]bool{}
	for _, img := range got {
		assert.True(t, img.Placeholder)
		assert.False(t, seen[img.URL], "duplicate placeholder %s", img.URL)
		seen[img.URL] = true
	}

	again := g.GenerateImages(context.Background(), prompts[:1], "auto", "")
	assert.NotEqual(t, got[0].URL, again[0].URL, "placeholders carry a random token")
}

type blockingPolicy struct{}

func (blockingPolicy) Wait(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestGenerateImages_CanceledDuringRetry(t *testing.T) {
	images := newFakeImages(map[string]int{"prompt": -1})
	g := New(images, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{Retry: blockingPolicy{}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	got := g.GenerateImages(ctx, prompts, "auto", "")
	require.Len(t, got, 3)
	for _, img := range got {
		assert.True(t, img.Placeholder)
	}
	assert.Equal(t, len(prompts), images.calls["prompt"], "no retry after cancellation")
}

func TestGenerateImages_Empty(t *testing.T) {
	assert.Nil(t, newGenerator(newFakeImages(nil)).GenerateImages(context.Background(), nil, "auto", ""))
}

func TestGenerateCover(t *testing.T) {
	images := newFakeImages(nil)
	g := newGenerator(images)

	cover := g.GenerateCover(context.Background(), "程序员的副业指南", "聊聊编程之外的收入", "minimalist")
	require.NotNil(t, cover)
	assert.Contains(t, cover.Prompt, "程序员的副业指南")
	assert.Contains(t, cover.Prompt, "科技感")
	assert.Equal(t, "1792x1024", images.requests[0].Size)
}

func TestGenerateCover_FailureYieldsNil(t *testing.T) {
	images := newFakeImages(map[string]int{"封面": -1})
	g := newGenerator(images)

	assert.Nil(t, g.GenerateCover(context.Background(), "标题", "正文", "auto"))
	assert.Equal(t, 1, images.calls["封面"], "covers are not retried")
}

func TestCoverTemplate(t *testing.T) {
	tests := []struct {
		title, content string
		want           string
	}{
		{"创业公司如何用人工智能降本", "", "business"},
		{"人工智能改变写作", "", "tech"},
		{"摄影入门", "构图与光线", "creative"},
		{"周末去哪儿", "一次说走就走的旅行", "lifestyle"},
		{"无题", "随便聊聊", "business"},
		{"Weekly Notes", "TECH stack review", "tech"},
		{"Daily email habits", "how to maintain focus", "business"},
		{"AI写作工具盘点", "", "tech"},
		{"Notes on AI", "", "tech"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.title, tt.want), func(t *testing.T) {
			name, _ := CoverTemplate(tt.title, tt.content)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestContainsKeyword(t *testing.T) {
	assert.True(t, containsKeyword("ai tools", "ai"))
	assert.True(t, containsKeyword("用ai做设计", "ai"))
	assert.True(t, containsKeyword("the ai", "ai"))
	assert.False(t, containsKeyword("maintain", "ai"))
	assert.False(t, containsKeyword("daily said", "ai"))
	assert.True(t, containsKeyword("人工智能", "人工智能"))
}

func TestStyleSuffix(t *testing.T) {
	assert.Equal(t, autoSuffix, StyleSuffix(""))
	assert.Equal(t, autoSuffix, StyleSuffix(AutoStyle))
	assert.Equal(t, styleSuffixes["3d"], StyleSuffix("3D"))
	assert.Equal(t, "，赛博朋克风格", StyleSuffix("赛博朋克"))
}
