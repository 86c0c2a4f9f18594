package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("AI podcast tools", "ai PODCAST tools"))
	assert.Equal(t, 0.0, Similarity("microphones", "video lighting"))
	assert.Equal(t, 0.0, Similarity("", "anything"))

	// 2 shared words out of 4 distinct.
	assert.InDelta(t, 0.5, Similarity("ai podcast trends", "ai podcast gear"), 1e-9)
}

func TestDeduplicate_FirstOccurrenceWins(t *testing.T) {
	suggestions := []domain.TopicSuggestion{
		{Title: "AI tools for podcast editing", SourcePlatform: domain.PlatformTwitter},
		{Title: "AI tools for podcast editing today", SourcePlatform: domain.PlatformReddit},
		{Title: "Monetizing a small show", SourcePlatform: domain.PlatformThreads},
	}

	unique := Deduplicate(suggestions, DedupeThreshold)

	require.Len(t, unique, 2)
	assert.Equal(t, domain.PlatformTwitter, unique[0].SourcePlatform)
	assert.Equal(t, "Monetizing a small show", unique[1].Title)
}

func TestDeduplicate_Idempotent(t *testing.T) {
	suggestions := []domain.TopicSuggestion{
		{Title: "AI tools for podcast editing"},
		{Title: "AI tools for podcast editing now"},
		{Title: "Interview prep mistakes"},
	}

	once := Deduplicate(suggestions, DedupeThreshold)
	twice := Deduplicate(once, DedupeThreshold)

	assert.Equal(t, once, twice)
}

func TestScore(t *testing.T) {
	// Engagement scales down by 100 and caps at 10.
	assert.Equal(t, 5.8, Score(8, 250))
	assert.Equal(t, 8.8, Score(8, 5000))
	assert.Equal(t, 3.0, Score(5, 0))

	// Default relevance with mid engagement lands exactly on 5.0.
	assert.Equal(t, 5.0, Score(5, 500))
}

func TestRank_OrdersByUnifiedScoreDescending(t *testing.T) {
	suggestions := []domain.TopicSuggestion{
		{Title: "low", RelevanceScore: floatPtr(3), PlatformEngagement: 50},
		{Title: "high", RelevanceScore: floatPtr(9), PlatformEngagement: 2000},
		{Title: "default-relevance", PlatformEngagement: 500},
	}

	ranked := Rank(suggestions)

	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].Title)
	assert.Equal(t, 9.4, ranked[0].UnifiedScore)
	assert.Equal(t, "default-relevance", ranked[1].Title)
	assert.Equal(t, 5.0, ranked[1].UnifiedScore)
	assert.Equal(t, "low", ranked[2].Title)
	assert.Equal(t, 2.0, ranked[2].UnifiedScore)

	// Input untouched.
	assert.Zero(t, suggestions[1].UnifiedScore)
}

func TestRank_StableForEqualScores(t *testing.T) {
	suggestions := []domain.TopicSuggestion{
		{Title: "first", RelevanceScore: floatPtr(5), PlatformEngagement: 100},
		{Title: "second", RelevanceScore: floatPtr(5), PlatformEngagement: 100},
	}

	ranked := Rank(suggestions)

	assert.Equal(t, "first", ranked[0].Title)
	assert.Equal(t, "second", ranked[1].Title)
}
