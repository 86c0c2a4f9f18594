// Package twitter searches tweets through the twitter241 RapidAPI
// gateway and normalizes them into domain content items.
package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/source"
)

const (
	// The search endpoint rejects long queries, so keyword lists are
	// chunked. Each keyword is rendered as `"kw" OR ` on the wire,
	// costing its own length plus six characters.
	maxQueryLen     = 480
	keywordOverhead = 6
)

// Config holds twitter source configuration.
type Config struct {
	APIKey                string
	BaseURL               string
	Timeout               time.Duration
	MaxAttempts           int
	InitialBackoff        time.Duration
	MaxBackoff            time.Duration
	MaxRequestsPerSession int
}

// Adapter implements source.Adapter for the twitter241 API.
type Adapter struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	host           string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	budget         *source.CallBudget
	logger         *slog.Logger
}

// New creates a twitter adapter. The RapidAPI key is the only hard
// requirement; everything else has usable defaults.
func New(cfg Config, logger *slog.Logger) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("twitter: RapidAPI key is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("twitter: parse base url: %w", err)
	}

	return &Adapter{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		host:           u.Host,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		budget:         source.NewCallBudget(cfg.MaxRequestsPerSession),
		logger:         logger.With("platform", domain.PlatformTwitter),
	}, nil
}

// Platform returns the platform identifier.
func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformTwitter
}

// ResetSessionCounter starts a fresh call budget for a new research
// session.
func (a *Adapter) ResetSessionCounter() {
	a.budget.Reset()
	a.logger.Debug("session counter reset", "max_requests", a.budget.Max())
}

// SearchByKeywords fetches tweets matching the keywords. The keyword
// list is chunked to respect the query length ceiling; each chunk costs
// one budgeted API call. Results gathered before budget exhaustion are
// returned, deduplicated by tweet ID.
func (a *Adapter) SearchByKeywords(ctx context.Context, req source.SearchRequest) ([]domain.ContentItem, error) {
	keywords := req.Keywords
	if req.UseRandomKeywords {
		keywords = source.SampleKeywords(keywords, req.RandomKeywordCount)
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	chunks := source.ChunkKeywords(keywords, maxQueryLen, keywordOverhead)
	perChunk := req.MaxItems
	if len(chunks) > 1 {
		perChunk = req.MaxItems / len(chunks)
		if perChunk < 1 {
			perChunk = 1
		}
	}

	var all []domain.ContentItem
	for i, chunk := range chunks {
		if a.budget.Exhausted() {
			a.logger.Warn("session request limit reached, skipping remaining chunks",
				"used", a.budget.Used(),
				"max", a.budget.Max(),
				"remaining_chunks", len(chunks)-i,
			)
			break
		}

		query := source.RenderQuery(chunk)
		resp, err := a.search(ctx, query, perChunk)
		if err != nil {
			a.logger.Error("chunk search failed",
				"chunk", i+1,
				"chunks", len(chunks),
				"used", a.budget.Used(),
				"error", err,
			)
			continue
		}

		items := a.transform(resp, chunk)
		all = append(all, items...)

		a.logger.Debug("chunk searched",
			"chunk", i+1,
			"chunks", len(chunks),
			"tweets", len(items),
			"used", a.budget.Used(),
		)
	}

	unique := source.DedupeByID(all)
	if req.MaxItems > 0 && len(unique) > req.MaxItems {
		unique = unique[:req.MaxItems]
	}

	a.logger.Info("search complete",
		"tweets", len(unique),
		"used", a.budget.Used(),
		"max", a.budget.Max(),
	)
	return unique, nil
}

// AnalyzeEngagement aggregates engagement metrics across tweets.
func (a *Adapter) AnalyzeEngagement(items []domain.ContentItem) domain.EngagementSummary {
	return source.Summarize(items)
}

func (a *Adapter) search(ctx context.Context, query string, count int) (*apiResponse, error) {
	var resp *apiResponse
	var err error

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		a.budget.Spend()

		resp, err = a.doRequest(ctx, query, count)
		if err == nil {
			return resp, nil
		}

		if attempt == a.maxAttempts || a.budget.Exhausted() {
			break
		}

		backoff := a.calculateBackoff(attempt)
		a.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("search %q: %w", query, err)
}

func (a *Adapter) doRequest(ctx context.Context, query string, count int) (*apiResponse, error) {
	u := fmt.Sprintf("%s/search-v2?type=Top&count=%d&query=%s",
		a.baseURL, count, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("x-rapidapi-key", a.apiKey)
	req.Header.Set("x-rapidapi-host", a.host)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (a *Adapter) calculateBackoff(attempt int) time.Duration {
	backoff := a.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > a.maxBackoff {
		backoff = a.maxBackoff
	}
	return backoff
}

func (a *Adapter) transform(resp *apiResponse, keywords []string) []domain.ContentItem {
	var items []domain.ContentItem

	for _, inst := range resp.Result.Timeline.Instructions {
		for _, e := range inst.Entries {
			result := e.Content.ItemContent.TweetResults.Result
			tweet := result.Legacy
			if tweet == nil || tweet.FullText == "" {
				continue
			}

			author := ""
			if tweet.User != nil {
				author = tweet.User.ScreenName
			}
			if author == "" && result.Core != nil {
				author = result.Core.UserResults.Result.Legacy.ScreenName
			}

			sourceURL := ""
			if author != "" && tweet.IDStr != "" {
				sourceURL = fmt.Sprintf("https://x.com/%s/status/%s", author, tweet.IDStr)
			}

			items = append(items, domain.ContentItem{
				ID:        tweet.IDStr,
				Text:      tweet.FullText,
				Author:    author,
				CreatedAt: tweet.CreatedAt,
				Platform:  domain.PlatformTwitter,
				SourceURL: sourceURL,
				Engagement: map[string]int64{
					"likes":    tweet.FavoriteCount,
					"retweets": tweet.RetweetCount,
					"replies":  tweet.ReplyCount,
					"quotes":   tweet.QuoteCount,
				},
				MatchedKeywords: keywords,
			})
		}
	}

	return items
}
