// Package reddit searches posts through the reddit34 RapidAPI gateway
// and normalizes them into domain content items.
package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/source"
)

const (
	// Reddit search queries are short; keywords are space separated so
	// each one costs its length plus one separator character.
	maxQueryLen     = 100
	keywordOverhead = 1
)

// Config holds reddit source configuration.
type Config struct {
	APIKey                string
	BaseURL               string
	Timeout               time.Duration
	MaxAttempts           int
	InitialBackoff        time.Duration
	MaxBackoff            time.Duration
	MaxRequestsPerSession int
}

// Adapter implements source.Adapter for the reddit34 API.
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

// New creates a reddit adapter.
func New(cfg Config, logger *slog.Logger) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("reddit: RapidAPI key is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("reddit: parse base url: %w", err)
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
		logger:         logger.With("platform", domain.PlatformReddit),
	}, nil
}

// Platform returns the platform identifier.
func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformReddit
}

// ResetSessionCounter starts a fresh call budget for a new research
// session.
func (a *Adapter) ResetSessionCounter() {
	a.budget.Reset()
	a.logger.Debug("session counter reset", "max_requests", a.budget.Max())
}

// SearchByKeywords fetches posts matching the keywords. The keyword
// list is chunked to stay under reddit's short query limit; each chunk
// costs one budgeted call. Partial results are returned when the budget
// runs out mid-list.
func (a *Adapter) SearchByKeywords(ctx context.Context, req source.SearchRequest) ([]domain.ContentItem, error) {
	keywords := req.Keywords
	if req.UseRandomKeywords {
		keywords = source.SampleKeywords(keywords, req.RandomKeywordCount)
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	chunks := source.ChunkKeywords(keywords, maxQueryLen, keywordOverhead)
	timeFilter := timeFilterFor(req.DaysBack)

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
		resp, err := a.search(ctx, query, timeFilter)
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
			"posts", len(items),
			"used", a.budget.Used(),
		)
	}

	unique := source.DedupeByID(all)
	if req.MaxItems > 0 && len(unique) > req.MaxItems {
		unique = unique[:req.MaxItems]
	}

	a.logger.Info("search complete",
		"posts", len(unique),
		"used", a.budget.Used(),
		"max", a.budget.Max(),
	)
	return unique, nil
}

// AnalyzeEngagement aggregates engagement metrics across posts.
func (a *Adapter) AnalyzeEngagement(items []domain.ContentItem) domain.EngagementSummary {
	return source.Summarize(items)
}

func timeFilterFor(daysBack int) string {
	switch {
	case daysBack <= 1:
		return "day"
	case daysBack <= 7:
		return "week"
	case daysBack <= 31:
		return "month"
	default:
		return "year"
	}
}

func (a *Adapter) search(ctx context.Context, query, timeFilter string) (*apiResponse, error) {
	var resp *apiResponse
	var err error

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		a.budget.Spend()

		resp, err = a.doRequest(ctx, query, timeFilter)
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

func (a *Adapter) doRequest(ctx context.Context, query, timeFilter string) (*apiResponse, error) {
	u := fmt.Sprintf("%s/getSearchPosts?query=%s&sort=RELEVANCE&time=%s",
		a.baseURL, url.QueryEscape(query), timeFilter)

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

	if !apiResp.Success {
		return nil, fmt.Errorf("api error: %s", apiResp.Message)
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

	for _, w := range resp.Data.Posts {
		p := w.Data
		if p.Title == "" {
			continue
		}

		text := p.Title
		if p.Selftext != "" {
			text = p.Title + ". " + p.Selftext
		}

		sourceURL := ""
		if p.Permalink != "" {
			sourceURL = "https://www.reddit.com" + strings.TrimSuffix(p.Permalink, "/") + "/"
		}

		items = append(items, domain.ContentItem{
			ID:        p.ID,
			Text:      text,
			Author:    p.Author,
			CreatedAt: strconv.FormatInt(int64(p.CreatedUTC), 10),
			Platform:  domain.PlatformReddit,
			SourceURL: sourceURL,
			Engagement: map[string]int64{
				"upvotes":   p.Ups,
				"downvotes": p.Downs,
				"score":     p.Score,
				"comments":  p.NumComments,
			},
			MatchedKeywords: keywords,
		})
	}

	return items
}
