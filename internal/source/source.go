// Package source holds the platform adapter contract and the search
// machinery shared by all four platform packages: per-session call
// budgeting, keyword chunking and sampling, engagement aggregation and
// keyword filtering.
package source

import (
	"context"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// SearchRequest parameterizes one adapter search.
type SearchRequest struct {
	Keywords           []string
	MaxItems           int
	DaysBack           int
	UseRandomKeywords  bool
	RandomKeywordCount int
	Regions            []string // TikTok only, ignored elsewhere
}

// Adapter fetches and normalizes raw items from one external platform.
// Implementations own a session-scoped call budget that the orchestrator
// resets at the start of every research session.
type Adapter interface {
	Platform() domain.Platform
	ResetSessionCounter()
	SearchByKeywords(ctx context.Context, req SearchRequest) ([]domain.ContentItem, error)
	AnalyzeEngagement(items []domain.ContentItem) domain.EngagementSummary
}

// DedupeByID drops items whose ID was already seen, preserving order.
// Items with empty IDs are kept as-is; the remote sometimes omits them.
func DedupeByID(items []domain.ContentItem) []domain.ContentItem {
	seen := make(map[string]struct{}, len(items))
	unique := make([]domain.ContentItem, 0, len(items))

	for _, item := range items {
		if item.ID != "" {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
		}
		unique = append(unique, item)
	}

	return unique
}
