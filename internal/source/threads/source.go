// Package threads searches Meta Threads posts through the threads-api4
// RapidAPI gateway and normalizes them into domain content items.
package threads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/source"
)

// Config holds threads source configuration.
type Config struct {
	APIKey                string
	BaseURL               string
	Timeout               time.Duration
	MaxAttempts           int
	InitialBackoff        time.Duration
	MaxBackoff            time.Duration
	MaxRequestsPerSession int
}

// Adapter implements source.Adapter for the threads-api4 API.
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

// New creates a threads adapter.
func New(cfg Config, logger *slog.Logger) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("threads: RapidAPI key is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("threads: parse base url: %w", err)
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
		logger:         logger.With("platform", domain.PlatformThreads),
	}, nil
}

// Platform returns the platform identifier.
func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformThreads
}

// ResetSessionCounter starts a fresh call budget for a new research
// session.
func (a *Adapter) ResetSessionCounter() {
	a.budget.Reset()
	a.logger.Debug("session counter reset", "max_requests", a.budget.Max())
}

// SearchByKeywords fetches posts for each keyword. The recent-search
// endpoint takes one term at a time, so every keyword costs one
// budgeted call and random sampling keeps long lists under the cap.
func (a *Adapter) SearchByKeywords(ctx context.Context, req source.SearchRequest) ([]domain.ContentItem, error) {
	keywords := req.Keywords
	if req.UseRandomKeywords {
		keywords = source.SampleKeywords(keywords, req.RandomKeywordCount)
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	var all []domain.ContentItem
	for _, keyword := range keywords {
		if a.budget.Exhausted() {
			a.logger.Warn("session request limit reached, stopping search",
				"used", a.budget.Used(),
				"max", a.budget.Max(),
			)
			break
		}

		resp, err := a.search(ctx, keyword)
		if err != nil {
			a.logger.Error("keyword search failed",
				"keyword", keyword,
				"used", a.budget.Used(),
				"error", err,
			)
			continue
		}

		items := a.transform(resp, keyword)
		all = append(all, items...)

		a.logger.Debug("keyword searched",
			"keyword", keyword,
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

func (a *Adapter) search(ctx context.Context, keyword string) (*apiResponse, error) {
	var resp *apiResponse
	var err error

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		a.budget.Spend()

		resp, err = a.doRequest(ctx, keyword)
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

	return nil, fmt.Errorf("search %q: %w", keyword, err)
}

func (a *Adapter) doRequest(ctx context.Context, keyword string) (*apiResponse, error) {
	u := fmt.Sprintf("%s/api/search/recent?query=%s", a.baseURL, url.QueryEscape(keyword))

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

	if apiResp.Status != "ok" {
		return nil, fmt.Errorf("api status: %s", apiResp.Status)
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

func (a *Adapter) transform(resp *apiResponse, keyword string) []domain.ContentItem {
	var items []domain.ContentItem

	for _, e := range resp.Data.SearchResults.Edges {
		for _, ti := range e.Node.Thread.ThreadItems {
			p := ti.Post
			if p.Caption.Text == "" {
				continue
			}

			sourceURL := ""
			if p.User.Username != "" && p.Code != "" {
				sourceURL = fmt.Sprintf("https://www.threads.net/@%s/post/%s", p.User.Username, p.Code)
			}

			items = append(items, domain.ContentItem{
				ID:        p.ID,
				Text:      p.Caption.Text,
				Author:    p.User.Username,
				CreatedAt: strconv.FormatInt(p.TakenAt, 10),
				Platform:  domain.PlatformThreads,
				SourceURL: sourceURL,
				Engagement: map[string]int64{
					"likes":   p.LikeCount,
					"replies": p.TextPostAppInfo.DirectReplyCount,
					"reposts": p.TextPostAppInfo.RepostCount,
				},
				MatchedKeywords: []string{keyword},
			})
		}
	}

	return items
}
