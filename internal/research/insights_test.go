package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

func resultWithTopics(averages map[string]float64, titles ...string) domain.PlatformResult {
	set := domain.TopicSet{}
	for _, t := range titles {
		set.Topics = append(set.Topics, domain.TopicSuggestion{Title: t})
	}
	return domain.PlatformResult{
		ItemsAnalyzed:      len(titles),
		EngagementAnalysis: domain.EngagementSummary{Items: len(titles), Averages: averages},
		TopicSuggestions:   set,
	}
}

func TestBuildInsights_RequiresTwoPlatforms(t *testing.T) {
	results := map[domain.Platform]domain.PlatformResult{
		domain.PlatformTwitter: resultWithTopics(map[string]float64{"likes": 10}, "solo topic"),
	}

	insights := buildInsights(results, []domain.Platform{domain.PlatformTwitter})

	assert.Equal(t, "insufficient data", insights.Err)
	assert.Nil(t, insights.EngagementComparison)
	assert.Nil(t, insights.TopicAnalysis)
}

func TestBuildInsights_EngagementComparisonFormulas(t *testing.T) {
	results := map[domain.Platform]domain.PlatformResult{
		domain.PlatformTwitter: resultWithTopics(map[string]float64{"likes": 100, "retweets": 40, "replies": 999}, "alpha"),
		domain.PlatformTikTok:  resultWithTopics(map[string]float64{"likes": 500, "shares": 80, "plays": 99999}, "beta"),
		domain.PlatformThreads: resultWithTopics(map[string]float64{"likes": 60, "replies": 20, "reposts": 10}, "gamma"),
		domain.PlatformReddit:  resultWithTopics(map[string]float64{"upvotes": 90, "comments": 30, "score": 999}, "delta"),
	}
	succeeded := []domain.Platform{
		domain.PlatformTwitter, domain.PlatformTikTok, domain.PlatformThreads, domain.PlatformReddit,
	}

	insights := buildInsights(results, succeeded)
	require.Empty(t, insights.Err)
	comparison := insights.EngagementComparison
	require.NotNil(t, comparison)

	assert.Equal(t, 140.0, comparison.PlatformEngagement[domain.PlatformTwitter])
	assert.Equal(t, 580.0, comparison.PlatformEngagement[domain.PlatformTikTok])
	assert.Equal(t, 70.0, comparison.PlatformEngagement[domain.PlatformThreads])
	assert.Equal(t, 120.0, comparison.PlatformEngagement[domain.PlatformReddit])
	assert.Equal(t, domain.PlatformTikTok, comparison.HighestEngagementPlatform)
	assert.Equal(t, succeeded, comparison.AvailablePlatforms)
}

func TestBuildInsights_CommonThemesAndUniquePerspectives(t *testing.T) {
	results := map[domain.Platform]domain.PlatformResult{
		domain.PlatformTwitter: resultWithTopics(map[string]float64{"likes": 10},
			"Podcast growth strategies", "Editing shortcuts"),
		domain.PlatformReddit: resultWithTopics(map[string]float64{"upvotes": 10},
			"Podcast growth communities", "Microphone deals"),
	}
	succeeded := []domain.Platform{domain.PlatformTwitter, domain.PlatformReddit}

	insights := buildInsights(results, succeeded)
	analysis := insights.TopicAnalysis
	require.NotNil(t, analysis)

	// "podcast" and "growth" appear in both platforms' titles.
	assert.Equal(t, []string{"podcast", "growth"}, analysis.CommonThemes)

	assert.Contains(t, analysis.UniquePerspectives[domain.PlatformTwitter], "strategies")
	assert.Contains(t, analysis.UniquePerspectives[domain.PlatformTwitter], "editing")
	assert.NotContains(t, analysis.UniquePerspectives[domain.PlatformTwitter], "podcast")
	assert.Contains(t, analysis.UniquePerspectives[domain.PlatformReddit], "microphone")
}

func TestBuildInsights_ShortThemeWordsCount(t *testing.T) {
	results := map[domain.Platform]domain.PlatformResult{
		domain.PlatformTwitter: resultWithTopics(map[string]float64{"likes": 10},
			"AI ethics debate"),
		domain.PlatformReddit: resultWithTopics(map[string]float64{"upvotes": 10},
			"AI regulation news"),
	}

	insights := buildInsights(results, []domain.Platform{domain.PlatformTwitter, domain.PlatformReddit})
	analysis := insights.TopicAnalysis
	require.NotNil(t, analysis)

	// Word intersection is over raw lowercased words; short words like
	// "ai" count the same as long ones.
	assert.Equal(t, []string{"ai"}, analysis.CommonThemes)
	assert.Contains(t, analysis.UniquePerspectives[domain.PlatformReddit], "news")
	assert.NotContains(t, analysis.UniquePerspectives[domain.PlatformReddit], "ai")
}

func TestBuildInsights_CommonThemesCappedAtEight(t *testing.T) {
	shared := "alpha bravo charlie delta echoes foxtrot golfing hotels indigo julietta"
	results := map[domain.Platform]domain.PlatformResult{
		domain.PlatformTwitter: resultWithTopics(map[string]float64{"likes": 10}, shared),
		domain.PlatformReddit:  resultWithTopics(map[string]float64{"upvotes": 10}, shared),
	}

	insights := buildInsights(results, []domain.Platform{domain.PlatformTwitter, domain.PlatformReddit})

	assert.Len(t, insights.TopicAnalysis.CommonThemes, 8)
}

func TestBuildInsights_UsesOnlyTopThreeTitles(t *testing.T) {
	results := map[domain.Platform]domain.PlatformResult{
		domain.PlatformTwitter: resultWithTopics(map[string]float64{"likes": 10},
			"first topical", "second topical", "third topical", "buried zanzibar"),
		domain.PlatformReddit: resultWithTopics(map[string]float64{"upvotes": 10},
			"totally unrelated zanzibar"),
	}

	insights := buildInsights(results, []domain.Platform{domain.PlatformTwitter, domain.PlatformReddit})

	// The fourth twitter title never enters the comparison, so zanzibar
	// stays unique to reddit.
	assert.NotContains(t, insights.TopicAnalysis.CommonThemes, "zanzibar")
	assert.Contains(t, insights.TopicAnalysis.UniquePerspectives[domain.PlatformReddit], "zanzibar")
	assert.Len(t, insights.TopicAnalysis.PlatformTopics[domain.PlatformTwitter], 3)
}

func TestRecommendationTiers(t *testing.T) {
	assert.Contains(t, recommendation(5000), "high engagement")
	assert.Contains(t, recommendation(500), "moderate engagement")
	assert.Contains(t, recommendation(20), "niche audience")
}

func TestRankEngagementFormulas(t *testing.T) {
	summary := domain.EngagementSummary{Averages: map[string]float64{
		"likes": 100, "retweets": 30, "shares": 20, "upvotes": 55, "comments": 5, "reposts": 7,
	}}

	assert.Equal(t, 130.0, rankEngagement(domain.PlatformTwitter, summary))
	assert.Equal(t, 120.0, rankEngagement(domain.PlatformTikTok, summary))
	assert.Equal(t, 100.0, rankEngagement(domain.PlatformThreads, summary))
	assert.Equal(t, 55.0, rankEngagement(domain.PlatformReddit, summary))
}
