// Package analysis provides post-level text analysis over fetched
// content: keyword extraction, sentiment patterns, content gaps and
// hashtag trends. All functions are pure and operate on already
// normalized items.
package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

var (
	wordPattern    = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
)

// stopWords are dropped before counting. The list covers common English
// filler plus platform noise (urls, twitter verbs).
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "day": {}, "get": {}, "has": {},
	"him": {}, "his": {}, "how": {}, "man": {}, "new": {}, "now": {},
	"old": {}, "see": {}, "two": {}, "way": {}, "who": {}, "boy": {},
	"did": {}, "its": {}, "let": {}, "put": {}, "say": {}, "she": {},
	"too": {}, "use": {}, "https": {}, "com": {}, "www": {}, "http": {},
	"twitter": {}, "tweet": {}, "retweet": {}, "like": {}, "follow": {},
	"this": {}, "that": {}, "with": {}, "have": {}, "will": {},
	"from": {}, "they": {}, "been": {}, "said": {}, "each": {},
	"make": {}, "most": {}, "over": {}, "such": {}, "very": {},
	"what": {}, "your": {},
}

var positiveWords = []string{
	"good", "great", "awesome", "amazing", "love", "excellent", "perfect",
	"wonderful", "fantastic", "best", "incredible", "outstanding",
	"brilliant", "happy", "excited", "thrilled", "delighted", "pleased",
	"satisfied",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "hate", "worst", "disgusting",
	"pathetic", "useless", "disappointing", "frustrated", "angry", "sad",
	"upset", "annoyed", "furious", "devastated", "concerned", "worried",
}

// Keyword is one extracted keyword with its corpus frequency.
type Keyword struct {
	Keyword   string  `json:"keyword"`
	Frequency int     `json:"frequency"`
	Relevance float64 `json:"relevance_score"`
}

// SentimentSummary labels a batch of items by simple word-list matching.
type SentimentSummary struct {
	TotalAnalyzed      int     `json:"total_analyzed"`
	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	Overall            string  `json:"overall_sentiment"`
}

// GapReport compares the keywords a show tracks against what the
// fetched content actually talks about.
type GapReport struct {
	TargetKeywords     []string `json:"target_keywords"`
	CoveredKeywords    []string `json:"covered_keywords"`
	MissingKeywords    []string `json:"missing_keywords"`
	CoveragePercentage float64  `json:"coverage_percentage"`
	TrendingRelated    []string `json:"trending_related"`
	Opportunities      []string `json:"content_opportunities"`
	Recommendations    []string `json:"recommendations"`
}

// HashtagTrend is one hashtag ranked by the engagement it gathered.
type HashtagTrend struct {
	Topic           string  `json:"topic"`
	PostCount       int     `json:"post_count"`
	TotalEngagement int64   `json:"total_engagement"`
	AvgEngagement   float64 `json:"avg_engagement"`
	TrendStrength   float64 `json:"trend_strength"`
}

// ExtractKeywords returns the words appearing at least minFreq times
// across the items' text, stop-word filtered, most frequent first.
// Relevance is frequency divided by item count, so a keyword present in
// every item scores near 1.
func ExtractKeywords(items []domain.ContentItem, minFreq int) []Keyword {
	if len(items) == 0 {
		return nil
	}
	if minFreq <= 0 {
		minFreq = 3
	}

	counts := make(map[string]int)
	for _, item := range items {
		for _, word := range wordPattern.FindAllString(strings.ToLower(item.Text), -1) {
			if _, skip := stopWords[word]; skip {
				continue
			}
			counts[word]++
		}
	}

	var keywords []Keyword
	for word, count := range counts {
		if count < minFreq {
			continue
		}
		keywords = append(keywords, Keyword{
			Keyword:   word,
			Frequency: count,
			Relevance: float64(count) / float64(len(items)),
		})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Frequency != keywords[j].Frequency {
			return keywords[i].Frequency > keywords[j].Frequency
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})
	return keywords
}

// SentimentPatterns labels each item positive, negative or neutral by
// counting matches against fixed word lists, then aggregates
// percentages. Ties go to neutral.
func SentimentPatterns(items []domain.ContentItem) SentimentSummary {
	if len(items) == 0 {
		return SentimentSummary{}
	}

	var positive, negative, neutral int
	for _, item := range items {
		text := strings.ToLower(item.Text)
		var pos, neg int
		for _, w := range positiveWords {
			if strings.Contains(text, w) {
				pos++
			}
		}
		for _, w := range negativeWords {
			if strings.Contains(text, w) {
				neg++
			}
		}
		switch {
		case pos > neg:
			positive++
		case neg > pos:
			negative++
		default:
			neutral++
		}
	}

	total := len(items)
	summary := SentimentSummary{
		TotalAnalyzed:      total,
		PositivePercentage: float64(positive) / float64(total) * 100,
		NegativePercentage: float64(negative) / float64(total) * 100,
		NeutralPercentage:  float64(neutral) / float64(total) * 100,
	}

	switch {
	case positive >= negative && positive >= neutral:
		summary.Overall = "positive"
	case negative >= neutral:
		summary.Overall = "negative"
	default:
		summary.Overall = "neutral"
	}
	return summary
}

// ContentGaps reports which target keywords the fetched content already
// covers and which it misses, with trending related words as
// substitution candidates.
func ContentGaps(items []domain.ContentItem, targetKeywords []string) GapReport {
	if len(items) == 0 || len(targetKeywords) == 0 {
		return GapReport{}
	}

	extracted := ExtractKeywords(items, 3)
	seen := make(map[string]struct{}, len(extracted))
	for _, kw := range extracted {
		seen[kw.Keyword] = struct{}{}
	}

	var covered, missing []string
	for _, target := range targetKeywords {
		if _, ok := seen[strings.ToLower(target)]; ok {
			covered = append(covered, target)
		} else {
			missing = append(missing, target)
		}
	}

	var trending []string
	for i, kw := range extracted {
		if i == 20 {
			break
		}
		trending = append(trending, kw.Keyword)
	}

	opportunities := missing
	if len(opportunities) > 5 {
		opportunities = opportunities[:5]
	}

	return GapReport{
		TargetKeywords:     targetKeywords,
		CoveredKeywords:    covered,
		MissingKeywords:    missing,
		CoveragePercentage: float64(len(covered)) / float64(len(targetKeywords)) * 100,
		TrendingRelated:    trending,
		Opportunities:      opportunities,
		Recommendations:    gapRecommendations(missing, trending),
	}
}

func gapRecommendations(missing, trending []string) []string {
	var recs []string
	if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, fmt.Sprintf("Consider creating content around: %s", strings.Join(top, ", ")))
	}
	if len(trending) > 0 {
		top := trending
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, fmt.Sprintf("Leverage trending topics: %s", strings.Join(top, ", ")))
	}
	recs = append(recs,
		"Monitor competitor content for additional opportunities",
		"Engage with trending conversations to increase visibility",
	)
	return recs
}

// TrendingHashtags ranks hashtags by total engagement across the items.
// Recency filtering is left to the search window the items came from.
func TrendingHashtags(items []domain.ContentItem, limit int) []HashtagTrend {
	if len(items) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = 10
	}

	engagement := make(map[string]int64)
	counts := make(map[string]int)
	for _, item := range items {
		matches := hashtagPattern.FindAllStringSubmatch(item.Text, -1)
		seen := make(map[string]struct{}, len(matches))
		for _, m := range matches {
			tag := strings.ToLower(m[1])
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			engagement[tag] += item.TotalEngagement()
			counts[tag]++
		}
	}

	trends := make([]HashtagTrend, 0, len(engagement))
	for tag, total := range engagement {
		count := counts[tag]
		trends = append(trends, HashtagTrend{
			Topic:           tag,
			PostCount:       count,
			TotalEngagement: total,
			AvgEngagement:   float64(total) / float64(count),
			TrendStrength:   float64(count) * float64(total) / float64(len(items)),
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].TotalEngagement != trends[j].TotalEngagement {
			return trends[i].TotalEngagement > trends[j].TotalEngagement
		}
		return trends[i].Topic < trends[j].Topic
	})

	if len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}
