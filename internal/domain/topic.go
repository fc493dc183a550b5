package domain

// DecisionStage describes where the reader is in their decision journey.
type DecisionStage struct {
	Stage  string `json:"stage" yaml:"stage"`
	Reason string `json:"reason,omitempty" yaml:"reason"`
}

// AudienceScene pairs a target audience with the scene they read in.
type AudienceScene struct {
	Audience string `json:"audience" yaml:"audience"`
	Scene    string `json:"scene,omitempty" yaml:"scene"`
}

// DemandPainPoint captures what the reader struggles with and hopes for.
type DemandPainPoint struct {
	Emotional    string `json:"emotionalPain,omitempty" yaml:"emotional"`
	Realistic    string `json:"realisticPain,omitempty" yaml:"realistic"`
	Expectations string `json:"expectations,omitempty" yaml:"expectations"`
}

// TopicInsight is a ranked topic suggestion produced by insight synthesis.
type TopicInsight struct {
	Title           string          `json:"title" yaml:"title"`
	Description     string          `json:"description" yaml:"description"`
	Confidence      float64         `json:"confidence" yaml:"confidence"`
	DecisionStage   DecisionStage   `json:"decisionStage" yaml:"decision_stage"`
	AudienceScene   AudienceScene   `json:"audienceScene" yaml:"audience_scene"`
	DemandPainPoint DemandPainPoint `json:"demandPainPoint" yaml:"demand_pain_point"`
	Tags            []string        `json:"tags" yaml:"tags"`
}

// Topic is an insight chosen as the subject of an article.
type Topic struct {
	ID           string `json:"id" yaml:"id"`
	TopicInsight `yaml:",inline"`
}

// AggregateStats summarises the engagement of the analysed article set.
type AggregateStats struct {
	TotalArticles int     `json:"totalArticles"`
	AvgReads      float64 `json:"avgReads"`
	AvgLikes      float64 `json:"avgLikes"`
	AvgEngagement float64 `json:"avgEngagement"`
}

// ComputeStats derives aggregate statistics from raw articles. Engagement is
// likes per hundred reads, averaged over articles that have reads.
func ComputeStats(articles []RawArticle) AggregateStats {
	stats := AggregateStats{TotalArticles: len(articles)}
	if len(articles) == 0 {
		return stats
	}

	var reads, likes, engagement float64
	var engaged int
	for _, a := range articles {
		reads += float64(a.Reads)
		likes += float64(a.Likes)
		if a.Reads > 0 {
			engagement += float64(a.Likes) / float64(a.Reads) * 100
			engaged++
		}
	}

	n := float64(len(articles))
	stats.AvgReads = reads / n
	stats.AvgLikes = likes / n
	if engaged > 0 {
		stats.AvgEngagement = engagement / float64(engaged)
	}
	return stats
}
