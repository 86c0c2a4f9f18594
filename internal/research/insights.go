package research

import (
	"fmt"
	"strings"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

const (
	insufficientDataMarker = "insufficient data"

	maxCommonThemes       = 8
	maxUniquePerspectives = 5
	topTitlesPerPlatform  = 3
)

// rankEngagement is the per-platform engagement number attached to topic
// suggestions before ranking: the sum of the platform's headline average
// metrics.
func rankEngagement(p domain.Platform, summary domain.EngagementSummary) float64 {
	switch p {
	case domain.PlatformTwitter:
		return summary.Average("likes") + summary.Average("retweets")
	case domain.PlatformTikTok:
		return summary.Average("likes") + summary.Average("shares")
	case domain.PlatformThreads:
		return summary.Average("likes")
	case domain.PlatformReddit:
		return summary.Average("upvotes")
	default:
		return 0
	}
}

// comparisonEngagement is the combined average used when comparing
// platforms against each other. It counts more metrics than the ranking
// formula; comparisons want the full interaction picture while ranking
// wants a stable headline number.
func comparisonEngagement(p domain.Platform, summary domain.EngagementSummary) float64 {
	switch p {
	case domain.PlatformTwitter:
		return summary.Average("likes") + summary.Average("retweets")
	case domain.PlatformTikTok:
		return summary.Average("likes") + summary.Average("shares")
	case domain.PlatformThreads:
		return summary.Average("likes") + summary.Average("reposts")
	case domain.PlatformReddit:
		return summary.Average("upvotes") + summary.Average("comments")
	default:
		return 0
	}
}

// buildInsights synthesizes the cross-platform view over the successful
// platforms. Fewer than two successes cannot be compared, so the result
// carries only the insufficient-data marker.
func buildInsights(results map[domain.Platform]domain.PlatformResult, succeeded []domain.Platform) domain.CrossPlatformInsights {
	if len(succeeded) < 2 {
		return domain.CrossPlatformInsights{Err: insufficientDataMarker}
	}

	comparison := &domain.EngagementComparison{
		PlatformEngagement: make(map[domain.Platform]float64, len(succeeded)),
		AvailablePlatforms: succeeded,
	}
	best := -1.0
	for _, p := range succeeded {
		score := comparisonEngagement(p, results[p].EngagementAnalysis)
		comparison.PlatformEngagement[p] = score
		if score > best {
			best = score
			comparison.HighestEngagementPlatform = p
		}
	}

	platformTitles := make(map[domain.Platform][]string, len(succeeded))
	for _, p := range succeeded {
		var titles []string
		for _, topic := range results[p].TopicSuggestions.Topics {
			if topic.Title == "" {
				continue
			}
			titles = append(titles, topic.Title)
			if len(titles) == topTitlesPerPlatform {
				break
			}
		}
		platformTitles[p] = titles
	}

	analysis := &domain.TopicAnalysis{
		PlatformTopics:     platformTitles,
		CommonThemes:       commonThemes(succeeded, platformTitles),
		UniquePerspectives: uniquePerspectives(succeeded, platformTitles),
	}

	trending := make(map[domain.Platform][]string)
	for _, p := range succeeded {
		if themes := results[p].TopicSuggestions.TrendingThemes; len(themes) > 0 {
			trending[p] = themes
		}
	}

	recommendations := make(map[domain.Platform]string, len(succeeded))
	for _, p := range succeeded {
		recommendations[p] = recommendation(comparison.PlatformEngagement[p])
	}

	return domain.CrossPlatformInsights{
		EngagementComparison:    comparison,
		TopicAnalysis:           analysis,
		TrendingAnalysis:        trending,
		PlatformRecommendations: recommendations,
	}
}

// commonThemes collects title words appearing on at least two platforms,
// in first-seen order, capped. The intersection is over raw lowercased
// words, however short; coarse on purpose.
func commonThemes(succeeded []domain.Platform, titles map[domain.Platform][]string) []string {
	counts := make(map[string]int)
	var order []string

	// Deterministic order: walk the titles, not the word sets.
	for _, p := range succeeded {
		seen := make(map[string]struct{})
		for _, title := range titles[p] {
			for _, word := range strings.Fields(strings.ToLower(title)) {
				if _, dup := seen[word]; dup {
					continue
				}
				seen[word] = struct{}{}
				if counts[word] == 0 {
					order = append(order, word)
				}
				counts[word]++
			}
		}
	}

	var themes []string
	for _, word := range order {
		if counts[word] >= 2 {
			themes = append(themes, word)
			if len(themes) == maxCommonThemes {
				break
			}
		}
	}
	return themes
}

// uniquePerspectives collects, per platform, the title words no other
// platform used, capped per platform.
func uniquePerspectives(succeeded []domain.Platform, titles map[domain.Platform][]string) map[domain.Platform][]string {
	wordsByPlatform := make(map[domain.Platform]map[string]struct{}, len(succeeded))
	for _, p := range succeeded {
		wordsByPlatform[p] = titleWords(titles[p])
	}

	perspectives := make(map[domain.Platform][]string, len(succeeded))
	for _, p := range succeeded {
		var unique []string
		seen := make(map[string]struct{})
		for _, title := range titles[p] {
			for _, word := range strings.Fields(strings.ToLower(title)) {
				if _, dup := seen[word]; dup {
					continue
				}
				seen[word] = struct{}{}

				shared := false
				for _, other := range succeeded {
					if other == p {
						continue
					}
					if _, ok := wordsByPlatform[other][word]; ok {
						shared = true
						break
					}
				}
				if !shared {
					unique = append(unique, word)
					if len(unique) == maxUniquePerspectives {
						break
					}
				}
			}
			if len(unique) == maxUniquePerspectives {
				break
			}
		}
		perspectives[p] = unique
	}
	return perspectives
}

func titleWords(titles []string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, title := range titles {
		for _, word := range strings.Fields(strings.ToLower(title)) {
			words[word] = struct{}{}
		}
	}
	return words
}

func recommendation(avgEngagement float64) string {
	switch {
	case avgEngagement > 1000:
		return fmt.Sprintf("high engagement platform (avg %.1f), prioritize for reach", avgEngagement)
	case avgEngagement > 100:
		return fmt.Sprintf("moderate engagement platform (avg %.1f), good for consistent topic sourcing", avgEngagement)
	default:
		return fmt.Sprintf("niche audience platform (avg %.1f), useful for depth and unique angles", avgEngagement)
	}
}
