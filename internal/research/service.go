// Package research orchestrates the multi-platform research pipeline:
// fan out to the platform adapters, extract topics with AI, merge, rank
// and persist the session.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/afiaWhiteprints/esosa/internal/ai"
	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/source"
	"github.com/afiaWhiteprints/esosa/internal/topics"
)

// SessionTypeResearch tags stored records produced by Research.
const SessionTypeResearch = "research"

const sampleItemCount = 3

// Service runs research sessions. Adapters are attempted strictly in
// sequence; one platform's total failure never prevents collecting the
// others.
type Service struct {
	adapters  map[domain.Platform]source.Adapter
	analyzer  TopicAnalyzer
	store     Store
	publisher Publisher
	logger    *slog.Logger
}

// NewService creates a research service. The adapter list holds only the
// adapters that constructed successfully; platforms enabled in a request
// but missing here are recorded as attempted and failed.
func NewService(
	adapters []source.Adapter,
	analyzer TopicAnalyzer,
	store Store,
	publisher Publisher,
	logger *slog.Logger,
) *Service {
	byPlatform := make(map[domain.Platform]source.Adapter, len(adapters))
	for _, a := range adapters {
		byPlatform[a.Platform()] = a
	}

	return &Service{
		adapters:  byPlatform,
		analyzer:  analyzer,
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "research"),
	}
}

// Research runs one full research session and returns the persisted
// record. The only error it returns for expected conditions is
// *AllPlatformsFailedError when no platform produced content.
func (s *Service) Research(ctx context.Context, req domain.ResearchRequest) (*domain.SessionRecord, error) {
	s.logger.Info("research session starting",
		"keywords", len(req.Keywords),
		"niche", req.Niche,
	)

	for _, p := range domain.Platforms() {
		if req.Options(p).Enabled {
			if adapter, ok := s.adapters[p]; ok {
				adapter.ResetSessionCounter()
			}
		}
	}

	var attempted, succeeded []domain.Platform
	platformErrors := make(map[domain.Platform]string)
	results := make(map[domain.Platform]domain.PlatformResult)

	for _, p := range domain.Platforms() {
		opts := req.Options(p)
		if !opts.Enabled {
			continue
		}
		attempted = append(attempted, p)

		result := s.researchPlatform(ctx, p, opts, req)
		results[p] = result
		if result.Failed() {
			platformErrors[p] = result.Err
			s.logger.Warn("platform failed", "platform", p, "error", result.Err)
			continue
		}
		succeeded = append(succeeded, p)
		s.logger.Info("platform succeeded",
			"platform", p,
			"items", result.ItemsAnalyzed,
			"topics", len(result.TopicSuggestions.Topics),
		)
	}

	if len(succeeded) == 0 {
		return nil, &AllPlatformsFailedError{Attempted: attempted, Errors: platformErrors}
	}

	merged := mergeTopics(results, succeeded)
	ranked := topics.Rank(topics.Deduplicate(merged, topics.DedupeThreshold))

	var warnings []domain.HistoryMatch
	if len(ranked) > 0 {
		matches, err := s.store.CheckTopicCovered(ctx, ranked[0].Title, topics.HistoryThreshold)
		if err != nil {
			s.logger.Warn("history check failed", "error", err)
		} else if len(matches) > 0 {
			warnings = matches
			s.logger.Warn("top topic resembles covered history",
				"topic", ranked[0].Title,
				"matches", len(matches),
			)
		}
	}

	record := &domain.SessionRecord{
		SearchKeywords:        req.Keywords,
		Niche:                 req.Niche,
		Description:           req.Description,
		PlatformsAttempted:    attempted,
		PlatformsSucceeded:    succeeded,
		PlatformErrors:        platformErrors,
		PlatformResults:       results,
		RankedTopics:          ranked,
		CrossPlatformInsights: buildInsights(results, succeeded),
		TopicWarnings:         warnings,
		Timestamp:             time.Now().UTC(),
	}

	sessionID, err := s.store.SaveSession(ctx, *record, SessionTypeResearch)
	if err != nil {
		// The session is still valuable in memory; losing persistence is
		// logged, not fatal.
		s.logger.Error("failed to persist session", "error", err)
	}

	if req.Publish && s.publisher != nil {
		if err := s.publisher.ResearchCompleted(ctx, sessionID, *record); err != nil {
			s.logger.Error("failed to publish research event", "error", err)
		}
	}

	s.logger.Info("research session complete",
		"attempted", len(attempted),
		"succeeded", len(succeeded),
		"ranked_topics", len(ranked),
	)
	return record, nil
}

// researchPlatform runs search, engagement analysis and AI extraction
// for one platform. Every failure is folded into the result's Err.
func (s *Service) researchPlatform(ctx context.Context, p domain.Platform, opts domain.PlatformOptions, req domain.ResearchRequest) domain.PlatformResult {
	adapter, ok := s.adapters[p]
	if !ok {
		return domain.PlatformResult{Err: fmt.Sprintf("%s integration not available", p)}
	}

	items, err := adapter.SearchByKeywords(ctx, source.SearchRequest{
		Keywords:           req.Keywords,
		MaxItems:           opts.MaxItems,
		DaysBack:           req.DaysBack,
		UseRandomKeywords:  opts.UseRandomKeywords,
		RandomKeywordCount: opts.RandomKeywordCount,
		Regions:            opts.Regions,
	})
	if err != nil {
		return domain.PlatformResult{Err: fmt.Sprintf("search failed: %v", err)}
	}
	if len(items) == 0 {
		return domain.PlatformResult{Err: "no content found"}
	}

	summary := adapter.AnalyzeEngagement(items)

	set, err := s.analyzer.AnalyzeForTopics(ctx, ai.AnalysisInput{
		Niche:       req.Niche,
		Description: req.Description,
		Keywords:    req.Keywords,
		Platform:    p,
		Items:       items,
	})
	if err != nil {
		return domain.PlatformResult{Err: fmt.Sprintf("topic extraction failed: %v", err)}
	}

	samples := items
	if len(samples) > sampleItemCount {
		samples = samples[:sampleItemCount]
	}

	return domain.PlatformResult{
		ItemsAnalyzed:      len(items),
		EngagementAnalysis: summary,
		TopicSuggestions:   set,
		SampleItems:        samples,
	}
}

// mergeTopics collects every successful platform's suggestions, tagging
// each with its source platform and that platform's engagement number.
// Untitled suggestions are dropped; ranking cannot consider them.
func mergeTopics(results map[domain.Platform]domain.PlatformResult, succeeded []domain.Platform) []domain.TopicSuggestion {
	var merged []domain.TopicSuggestion
	for _, p := range succeeded {
		result := results[p]
		engagement := rankEngagement(p, result.EngagementAnalysis)
		for _, topic := range result.TopicSuggestions.Topics {
			if topic.Title == "" {
				continue
			}
			topic.SourcePlatform = p
			topic.PlatformEngagement = engagement
			merged = append(merged, topic)
		}
	}
	return merged
}
