package domain

import "time"

// PlatformResult is the per-platform outcome of one research session.
// Exactly one of the success fields or Err is set, never both.
type PlatformResult struct {
	ItemsAnalyzed      int               `json:"items_analyzed,omitempty"`
	EngagementAnalysis EngagementSummary `json:"engagement_analysis,omitempty"`
	TopicSuggestions   TopicSet          `json:"ai_topic_suggestions,omitempty"`
	SampleItems        []ContentItem     `json:"sample_items,omitempty"`
	Err                string            `json:"error,omitempty"`
}

// Failed reports whether the platform attempt ended in an error.
func (r PlatformResult) Failed() bool {
	return r.Err != ""
}

// EngagementComparison ranks the successful platforms by their combined
// average engagement.
type EngagementComparison struct {
	PlatformEngagement        map[Platform]float64 `json:"platform_engagement"`
	HighestEngagementPlatform Platform             `json:"highest_engagement_platform"`
	AvailablePlatforms        []Platform           `json:"available_platforms"`
}

// TopicAnalysis compares topic themes across platforms using plain
// word-set intersection over each platform's top titles.
type TopicAnalysis struct {
	PlatformTopics     map[Platform][]string `json:"platform_topics"`
	CommonThemes       []string              `json:"common_themes"`
	UniquePerspectives map[Platform][]string `json:"unique_perspectives"`
}

// CrossPlatformInsights is the synthesis over all successful platforms.
// With fewer than two successes only Err is set.
type CrossPlatformInsights struct {
	Err                     string                `json:"error,omitempty"`
	EngagementComparison    *EngagementComparison `json:"engagement_comparison,omitempty"`
	TopicAnalysis           *TopicAnalysis        `json:"topic_analysis,omitempty"`
	TrendingAnalysis        map[Platform][]string `json:"trending_analysis,omitempty"`
	PlatformRecommendations map[Platform]string   `json:"platform_recommendations,omitempty"`
}

// HistoryEntry is one previously covered topic. The history is append-only.
type HistoryEntry struct {
	Topic       string    `json:"topic" db:"topic"`
	EpisodeDate string    `json:"episode_date" db:"episode_date"`
	AddedAt     time.Time `json:"added_at" db:"added_at"`
}

// HistoryMatch is a history entry that resembles a candidate topic title.
type HistoryMatch struct {
	HistoryEntry
	Similarity float64 `json:"similarity"`
}

// SessionRecord is the immutable result of one research session.
// Invariant: PlatformsSucceeded is a subset of PlatformsAttempted and
// PlatformErrors holds exactly the attempted-but-failed platforms.
type SessionRecord struct {
	SearchKeywords        []string                    `json:"search_keywords"`
	Niche                 string                      `json:"podcast_niche,omitempty"`
	Description           string                      `json:"podcast_description,omitempty"`
	PlatformsAttempted    []Platform                  `json:"platforms_attempted"`
	PlatformsSucceeded    []Platform                  `json:"platforms_succeeded"`
	PlatformErrors        map[Platform]string         `json:"platform_errors,omitempty"`
	PlatformResults       map[Platform]PlatformResult `json:"platform_results"`
	RankedTopics          []TopicSuggestion           `json:"ranked_topics"`
	CrossPlatformInsights CrossPlatformInsights       `json:"cross_platform_insights"`
	TopicWarnings         []HistoryMatch              `json:"topic_warnings,omitempty"`
	Timestamp             time.Time                   `json:"timestamp"`
}

// SessionInfo is the indexed view of a stored session.
type SessionInfo struct {
	ID        int64      `json:"id" db:"id"`
	Type      string     `json:"type" db:"session_type"`
	Keywords  []string   `json:"keywords"`
	Platforms []Platform `json:"platforms"`
	Timestamp time.Time  `json:"timestamp" db:"created_at"`
}

// UsageStats summarizes stored sessions and history size.
type UsageStats struct {
	TotalSessions  int            `json:"total_sessions"`
	SessionsByType map[string]int `json:"sessions_by_type"`
	TopicsCovered  int            `json:"topics_covered"`
	LastSession    *SessionInfo   `json:"last_session,omitempty"`
}
