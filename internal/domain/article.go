package domain

import "time"

// RawArticle is a published article collected for analysis.
type RawArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
	Reads   int    `json:"reads"`
	URL     string `json:"url"`
}

// ReferenceArticle is supplied by the user in reference mode.
type ReferenceArticle struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	URL     string `json:"url,omitempty" yaml:"url"`
}

// ArticleSummary is the structured result of deep analysis for one article.
type ArticleSummary struct {
	Title              string   `json:"title"`
	KeyPoints          []string `json:"keyPoints"`
	Keywords           []string `json:"keywords"`
	Highlights         []string `json:"highlights"`
	TargetAudience     string   `json:"targetAudience"`
	Scenario           string   `json:"scenario"`
	PainPoint          string   `json:"painPoint"`
	EngagementAnalysis string   `json:"engagementAnalysis"`
	WritingStyle       string   `json:"writingStyle,omitempty"`
	ContentStructure   string   `json:"contentStructure,omitempty"`
}

// Draft is the text produced by draft generation.
type Draft struct {
	Title       string
	Content     string
	WordCount   int
	ReadingTime int
}

// Image is a reference to a generated (or placeholder) picture.
type Image struct {
	URL         string `json:"url"`
	Prompt      string `json:"prompt"`
	Placeholder bool   `json:"placeholder"`
}

// GeneratedArticle is the finished output of one pipeline run.
type GeneratedArticle struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	ContentHTML string               `json:"contentHtml,omitempty"`
	Images      []Image              `json:"images"`
	Cover       *Image               `json:"cover,omitempty"`
	WordCount   int                  `json:"wordCount"`
	ReadingTime int                  `json:"readingTime"`
	TopicID     string               `json:"topicId"`
	CreatedAt   time.Time            `json:"createdAt"`
	Parameters  GenerationParameters `json:"parameters"`
}

// Clone returns a deep copy that shares no slices or pointers with a.
func (a *GeneratedArticle) Clone() *GeneratedArticle {
	if a == nil {
		return nil
	}
	c := *a
	if a.Images != nil {
		c.Images = make([]Image, len(a.Images))
		copy(c.Images, a.Images)
	}
	if a.Cover != nil {
		cover := *a.Cover
		c.Cover = &cover
	}
	c.Parameters = a.Parameters.Clone()
	return &c
}
