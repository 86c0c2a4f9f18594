// Package tiktok searches short-form videos through the tiktok-scraper7
// RapidAPI gateway and normalizes them into domain content items.
package tiktok

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

var defaultRegions = []string{"US"}

// Config holds tiktok source configuration.
type Config struct {
	APIKey                string
	BaseURL               string
	Timeout               time.Duration
	MaxAttempts           int
	InitialBackoff        time.Duration
	MaxBackoff            time.Duration
	MaxRequestsPerSession int
}

// Adapter implements source.Adapter for the tiktok-scraper7 API.
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

// New creates a tiktok adapter.
func New(cfg Config, logger *slog.Logger) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("tiktok: RapidAPI key is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("tiktok: parse base url: %w", err)
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
		logger:         logger.With("platform", domain.PlatformTikTok),
	}, nil
}

// Platform returns the platform identifier.
func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformTikTok
}

// ResetSessionCounter starts a fresh call budget for a new research
// session.
func (a *Adapter) ResetSessionCounter() {
	a.budget.Reset()
	a.logger.Debug("session counter reset", "max_requests", a.budget.Max())
}

// SearchByKeywords fetches videos for each keyword and region pair.
// Unlike the text platforms there is no query chunking; every keyword
// costs one budgeted call per region, so random keyword sampling is the
// main lever for staying under the session cap.
func (a *Adapter) SearchByKeywords(ctx context.Context, req source.SearchRequest) ([]domain.ContentItem, error) {
	keywords := req.Keywords
	if req.UseRandomKeywords {
		keywords = source.SampleKeywords(keywords, req.RandomKeywordCount)
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	regions := req.Regions
	if len(regions) == 0 {
		regions = defaultRegions
	}

	perCall := req.MaxItems
	if n := len(keywords) * len(regions); n > 1 {
		perCall = req.MaxItems / n
		if perCall < 1 {
			perCall = 1
		}
	}

	var all []domain.ContentItem
search:
	for _, region := range regions {
		for _, keyword := range keywords {
			if a.budget.Exhausted() {
				a.logger.Warn("session request limit reached, stopping search",
					"used", a.budget.Used(),
					"max", a.budget.Max(),
				)
				break search
			}

			resp, err := a.search(ctx, keyword, region, perCall)
			if err != nil {
				a.logger.Error("keyword search failed",
					"keyword", keyword,
					"region", region,
					"used", a.budget.Used(),
					"error", err,
				)
				continue
			}

			items := a.transform(resp, keyword)
			all = append(all, items...)

			a.logger.Debug("keyword searched",
				"keyword", keyword,
				"region", region,
				"videos", len(items),
				"used", a.budget.Used(),
			)
		}
	}

	unique := source.DedupeByID(all)
	if req.MaxItems > 0 && len(unique) > req.MaxItems {
		unique = unique[:req.MaxItems]
	}

	a.logger.Info("search complete",
		"videos", len(unique),
		"used", a.budget.Used(),
		"max", a.budget.Max(),
	)
	return unique, nil
}

// AnalyzeEngagement aggregates engagement metrics across videos.
func (a *Adapter) AnalyzeEngagement(items []domain.ContentItem) domain.EngagementSummary {
	return source.Summarize(items)
}

func (a *Adapter) search(ctx context.Context, keyword, region string, count int) (*apiResponse, error) {
	var resp *apiResponse
	var err error

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		a.budget.Spend()

		resp, err = a.doRequest(ctx, keyword, region, count)
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

	return nil, fmt.Errorf("search %q in %s: %w", keyword, region, err)
}

func (a *Adapter) doRequest(ctx context.Context, keyword, region string, count int) (*apiResponse, error) {
	u := fmt.Sprintf("%s/feed/search?keywords=%s&region=%s&count=%d&cursor=0&publish_time=0&sort_type=0",
		a.baseURL, url.QueryEscape(keyword), url.QueryEscape(region), count)

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

	if apiResp.Code != 0 {
		return nil, fmt.Errorf("api error %d: %s", apiResp.Code, apiResp.Msg)
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

	for _, v := range resp.Data.Videos {
		if v.Title == "" {
			continue
		}

		author := v.Author.UniqueID
		if author == "" {
			author = v.Author.Nickname
		}

		sourceURL := ""
		if author != "" && v.id() != "" {
			sourceURL = fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", author, v.id())
		}

		items = append(items, domain.ContentItem{
			ID:        v.id(),
			Text:      v.Title,
			Author:    author,
			CreatedAt: strconv.FormatInt(v.CreateTime, 10),
			Platform:  domain.PlatformTikTok,
			SourceURL: sourceURL,
			Engagement: map[string]int64{
				"likes":    v.DiggCount,
				"comments": v.CommentCount,
				"shares":   v.ShareCount,
				"plays":    v.PlayCount,
			},
			MatchedKeywords: []string{keyword},
		})
	}

	return items
}
