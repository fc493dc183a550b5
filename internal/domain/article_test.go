package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedArticle_Clone(t *testing.T) {
	orig := &GeneratedArticle{
		ID:     "id",
		Title:  "title",
		Images: []Image{{URL: "https://img/1"}},
		Cover:  &Image{URL: "https://img/cover"},
	}

	c := orig.Clone()
	c.Images[0].URL = "changed"
	c.Cover.URL = "changed"

	assert.Equal(t, "https://img/1", orig.Images[0].URL)
	assert.Equal(t, "https://img/cover", orig.Cover.URL)
	assert.Nil(t, (*GeneratedArticle)(nil).Clone())
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]RawArticle{
		{Likes: 10, Reads: 100},
		{Likes: 30, Reads: 300},
		{Likes: 5, Reads: 0},
	})

	assert.Equal(t, 3, stats.TotalArticles)
	assert.InDelta(t, 133.33, stats.AvgReads, 0.01)
	assert.InDelta(t, 15, stats.AvgLikes, 0.01)
	assert.InDelta(t, 10, stats.AvgEngagement, 0.01)

	assert.Equal(t, AggregateStats{}, ComputeStats(nil))
}

func TestCacheEntry_Expired(t *testing.T) {
	stored := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := CacheEntry{StoredAt: stored, ExpiresAt: stored.Add(CacheTTL)}

	assert.False(t, e.Expired(stored.Add(CacheTTL)))
	assert.True(t, e.Expired(stored.Add(CacheTTL+time.Nanosecond)))
}

func TestStageError(t *testing.T) {
	err := NewStageError(StageDraft, fmt.Errorf("complete: %w", ErrUpstreamParse))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamParse))
	assert.Contains(t, err.Error(), "draft_generation")

	stage, ok := FailedStage(fmt.Errorf("run: %w", err))
	assert.True(t, ok)
	assert.Equal(t, StageDraft, stage)

	assert.NoError(t, NewStageError(StageDraft, nil))
}
