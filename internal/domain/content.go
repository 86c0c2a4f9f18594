package domain

// Platform identifies the content source a post came from.
type Platform string

const (
	PlatformTwitter Platform = "twitter"
	PlatformTikTok  Platform = "tiktok"
	PlatformThreads Platform = "threads"
	PlatformReddit  Platform = "reddit"
)

// Platforms lists every supported platform in attempt order.
func Platforms() []Platform {
	return []Platform{PlatformTwitter, PlatformTikTok, PlatformThreads, PlatformReddit}
}

// ContentItem is one normalized post from any platform. Engagement keys are
// platform-specific (likes/retweets for Twitter, upvotes/comments for
// Reddit, and so on) and always non-negative. CreatedAt keeps the
// platform's native timestamp format; nothing downstream parses it.
type ContentItem struct {
	ID         string           `json:"id"`
	Text       string           `json:"text"`
	Author     string           `json:"author"`
	CreatedAt  string           `json:"created_at"`
	Platform   Platform         `json:"platform"`
	SourceURL  string           `json:"source_url"`
	Engagement map[string]int64 `json:"engagement_metrics"`

	// MatchedKeywords records the query terms the item was found under.
	// MatchTypes is filled only by explicit keyword filtering.
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MatchTypes      []string `json:"match_types,omitempty"`
}

// Metric returns a single engagement metric, 0 when absent.
func (c ContentItem) Metric(name string) int64 {
	if c.Engagement == nil {
		return 0
	}
	return c.Engagement[name]
}

// TotalEngagement sums every engagement metric of the item.
func (c ContentItem) TotalEngagement() int64 {
	var total int64
	for _, v := range c.Engagement {
		total += v
	}
	return total
}

// EngagementSummary aggregates the engagement metrics of one adapter's
// result set. Totals and Averages are keyed by the platform's metric
// names. A zero-value summary means there was nothing to analyze.
type EngagementSummary struct {
	Items    int                `json:"items"`
	Totals   map[string]int64   `json:"totals,omitempty"`
	Averages map[string]float64 `json:"averages,omitempty"`
	TopItems []ContentItem      `json:"top_items,omitempty"`
}

// Average returns the average for a metric, 0 when absent.
func (e EngagementSummary) Average(name string) float64 {
	if e.Averages == nil {
		return 0
	}
	return e.Averages[name]
}

// Empty reports whether the summary was computed over zero items.
func (e EngagementSummary) Empty() bool {
	return e.Items == 0
}
