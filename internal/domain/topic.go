package domain

// TopicSuggestion is one AI-proposed episode topic. RelevanceScore is
// model-assigned on a 0-10 scale. SourcePlatform, PlatformEngagement and
// UnifiedScore are filled by the aggregator, never by the AI backend.
type TopicSuggestion struct {
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	RelevanceScore     *float64 `json:"relevance_score,omitempty"`
	NicheAlignment     string   `json:"niche_alignment,omitempty"`
	KeyPoints          []string `json:"key_points,omitempty"`
	UniqueAngle        string   `json:"unique_angle,omitempty"`
	SourcePlatform     Platform `json:"source_platform,omitempty"`
	PlatformEngagement float64  `json:"platform_engagement,omitempty"`
	UnifiedScore       float64  `json:"unified_score,omitempty"`
}

// Relevance returns the AI-assigned score, defaulting to 5 when the model
// omitted one.
func (t TopicSuggestion) Relevance() float64 {
	if t.RelevanceScore == nil {
		return 5
	}
	return *t.RelevanceScore
}

// TopicSet is the structured result of one AI topic-extraction call. When
// the model response could not be parsed, Topics is empty, Analysis holds
// the raw text and Err carries the degradation marker; that is a usable
// result, not a failure.
type TopicSet struct {
	Topics             []TopicSuggestion `json:"topics"`
	TrendingThemes     []string          `json:"trending_themes,omitempty"`
	AudienceSentiment  string            `json:"audience_sentiment,omitempty"`
	EngagementInsights string            `json:"engagement_insights,omitempty"`
	KeywordConnections string            `json:"keyword_connections,omitempty"`
	Analysis           string            `json:"analysis,omitempty"`
	Err                string            `json:"error,omitempty"`
}
