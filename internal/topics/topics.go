// Package topics scores, ranks and deduplicates episode topic
// suggestions across platforms.
package topics

import (
	"math"
	"sort"
	"strings"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// DedupeThreshold is the title similarity above which two suggestions
// count as the same topic.
const DedupeThreshold = 0.6

// HistoryThreshold is the title similarity above which a suggestion
// counts as already covered by a past episode.
const HistoryThreshold = 0.7

// Similarity measures word overlap between two titles: the size of the
// shared word set over the size of the combined word set, after
// lowercasing and whitespace tokenization. Returns 0 when either title
// has no words.
func Similarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}

	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

// Deduplicate drops suggestions whose title is more similar than the
// threshold to an earlier suggestion. Insertion order is preserved and
// the first occurrence wins, so ranked input keeps its best-scored
// representative of each topic cluster.
func Deduplicate(suggestions []domain.TopicSuggestion, threshold float64) []domain.TopicSuggestion {
	var unique []domain.TopicSuggestion
	for _, s := range suggestions {
		duplicate := false
		for _, kept := range unique {
			if Similarity(s.Title, kept.Title) >= threshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, s)
		}
	}
	return unique
}

// Score combines AI relevance with platform engagement into the unified
// score: relevance weighted 0.6 plus engagement (scaled down by 100 and
// capped at 10) weighted 0.4, rounded to two decimals.
func Score(relevance, engagement float64) float64 {
	scaled := engagement / 100
	if scaled > 10 {
		scaled = 10
	}
	return math.Round((relevance*0.6+scaled*0.4)*100) / 100
}

// Rank fills every suggestion's unified score and returns them sorted
// descending. The sort is stable so equal scores keep their platform
// order. The input slice is not modified.
func Rank(suggestions []domain.TopicSuggestion) []domain.TopicSuggestion {
	ranked := make([]domain.TopicSuggestion, len(suggestions))
	copy(ranked, suggestions)

	for i := range ranked {
		ranked[i].UnifiedScore = Score(ranked[i].Relevance(), ranked[i].PlatformEngagement)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UnifiedScore > ranked[j].UnifiedScore
	})
	return ranked
}
