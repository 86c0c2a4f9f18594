package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

func TestSummarize_TotalsAndAverages(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "1", Engagement: map[string]int64{"likes": 10, "retweets": 4}},
		{ID: "2", Engagement: map[string]int64{"likes": 20, "retweets": 0}},
		{ID: "3", Engagement: map[string]int64{"likes": 3, "replies": 6}},
	}

	summary := Summarize(items)

	assert.Equal(t, 3, summary.Items)
	assert.Equal(t, int64(33), summary.Totals["likes"])
	assert.Equal(t, int64(4), summary.Totals["retweets"])
	assert.Equal(t, int64(6), summary.Totals["replies"])

	for metric, total := range summary.Totals {
		assert.InDelta(t, float64(total)/3, summary.Averages[metric], 1e-9, metric)
	}
}

func TestSummarize_TopItemsOrderedByTotalEngagement(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "low", Engagement: map[string]int64{"likes": 1}},
		{ID: "high", Engagement: map[string]int64{"likes": 50, "retweets": 10}},
		{ID: "mid", Engagement: map[string]int64{"likes": 7}},
	}

	summary := Summarize(items)

	require.Len(t, summary.TopItems, 3)
	assert.Equal(t, "high", summary.TopItems[0].ID)
	assert.Equal(t, "mid", summary.TopItems[1].ID)
	assert.Equal(t, "low", summary.TopItems[2].ID)
}

func TestSummarize_CapsTopItemsAtFive(t *testing.T) {
	var items []domain.ContentItem
	for i := 0; i < 8; i++ {
		items = append(items, domain.ContentItem{Engagement: map[string]int64{"likes": int64(i)}})
	}

	summary := Summarize(items)

	assert.Len(t, summary.TopItems, 5)
	assert.Equal(t, 8, summary.Items)
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.Empty())
	assert.Zero(t, summary.Items)
	assert.Empty(t, summary.Totals)
	assert.Empty(t, summary.Averages)
}
