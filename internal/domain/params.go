package domain

import (
	"strconv"
	"strings"
)

// CreationMode selects how the draft is written.
type CreationMode string

const (
	ModeOriginal  CreationMode = "original"
	ModeReference CreationMode = "reference"
)

// GenerationParameters describe one requested article. A run treats them as
// immutable; copy with Clone before changing a field.
type GenerationParameters struct {
	Topic             Topic              `json:"topic" yaml:"topic"`
	Length            string             `json:"length" yaml:"length"`
	Style             string             `json:"style" yaml:"style"`
	ImageCount        int                `json:"imageCount" yaml:"image_count"`
	ImageStyle        string             `json:"imageStyle" yaml:"image_style"`
	ImageRatio        string             `json:"imageRatio" yaml:"image_ratio"`
	Mode              CreationMode       `json:"mode" yaml:"mode"`
	Inspiration       string             `json:"inspiration,omitempty" yaml:"inspiration"`
	ReferenceArticles []ReferenceArticle `json:"referenceArticles,omitempty" yaml:"reference_articles"`
	Structure         string             `json:"structure,omitempty" yaml:"structure"`
	UniqueAngle       string             `json:"uniqueAngle,omitempty" yaml:"unique_angle"`
}

// Clone returns a copy that does not share slices with p.
func (p GenerationParameters) Clone() GenerationParameters {
	c := p
	if p.ReferenceArticles != nil {
		c.ReferenceArticles = make([]ReferenceArticle, len(p.ReferenceArticles))
		copy(c.ReferenceArticles, p.ReferenceArticles)
	}
	if p.Topic.Tags != nil {
		c.Topic.Tags = make([]string, len(p.Topic.Tags))
		copy(c.Topic.Tags, p.Topic.Tags)
	}
	return c
}

// Fingerprint derives the cache key for p from topic id, length, style,
// image count, image style, image ratio and unique angle, in that order.
func Fingerprint(p GenerationParameters) string {
	return strings.Join([]string{
		p.Topic.ID,
		p.Length,
		p.Style,
		strconv.Itoa(p.ImageCount),
		p.ImageStyle,
		p.ImageRatio,
		p.UniqueAngle,
	}, "_")
}
