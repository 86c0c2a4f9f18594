package source

import (
	"sort"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

const topItemCount = 5

// Summarize sums and averages every engagement metric present in the
// items and keeps the top performers by total engagement. An empty input
// yields a zero-value summary; there is never a division by zero.
func Summarize(items []domain.ContentItem) domain.EngagementSummary {
	if len(items) == 0 {
		return domain.EngagementSummary{}
	}

	totals := make(map[string]int64)
	for _, item := range items {
		for metric, value := range item.Engagement {
			totals[metric] += value
		}
	}

	averages := make(map[string]float64, len(totals))
	for metric, total := range totals {
		averages[metric] = float64(total) / float64(len(items))
	}

	top := make([]domain.ContentItem, len(items))
	copy(top, items)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalEngagement() > top[j].TotalEngagement()
	})
	if len(top) > topItemCount {
		top = top[:topItemCount]
	}

	return domain.EngagementSummary{
		Items:    len(items),
		Totals:   totals,
		Averages: averages,
		TopItems: top,
	}
}
