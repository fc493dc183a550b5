package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Format(t *testing.T) {
	p := GenerationParameters{
		Topic:       Topic{ID: "t42"},
		Length:      "800-1200",
		Style:       "professional",
		ImageCount:  3,
		ImageStyle:  "watercolor",
		ImageRatio:  "16:9",
		UniqueAngle: "case study",
	}

	assert.Equal(t, "t42_800-1200_professional_3_watercolor_16:9_case study", Fingerprint(p))
}

func TestFingerprint_EmptyAngle(t *testing.T) {
	p := GenerationParameters{Topic: Topic{ID: "t1"}, Length: "short", Style: "casual", ImageCount: 1, ImageStyle: "auto", ImageRatio: "1:1"}

	assert.Equal(t, "t1_short_casual_1_auto_1:1_", Fingerprint(p))
}

func TestFingerprint_IgnoresNonKeyFields(t *testing.T) {
	base := GenerationParameters{Topic: Topic{ID: "t1"}, Length: "short", Style: "casual", ImageCount: 2}
	other := base.Clone()
	other.Inspiration = "something different"
	other.Mode = ModeReference
	other.Topic.Title = "another title"
	other.ReferenceArticles = []ReferenceArticle{{Title: "ref"}}

	assert.Equal(t, Fingerprint(base), Fingerprint(other))

	other.UniqueAngle = "angle"
	assert.NotEqual(t, Fingerprint(base), Fingerprint(other))
}

func TestGenerationParameters_CloneDoesNotShare(t *testing.T) {
	p := GenerationParameters{
		ReferenceArticles: []ReferenceArticle{{Title: "a"}},
		Topic:             Topic{TopicInsight: TopicInsight{Tags: []string{"x"}}},
	}
	c := p.Clone()
	c.ReferenceArticles[0].Title = "b"
	c.Topic.Tags[0] = "y"

	assert.Equal(t, "a", p.ReferenceArticles[0].Title)
	assert.Equal(t, "x", p.Topic.Tags[0])
}
