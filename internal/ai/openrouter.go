package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// OpenRouterConfig holds OpenRouter backend configuration.
type OpenRouterConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
	MinInterval time.Duration
}

// OpenRouterBackend calls the OpenRouter chat-completions API. Free-tier
// models rate-limit aggressively, so calls are paced a minimum interval
// apart and retried with exponential backoff before the backend declares
// itself unusable.
type OpenRouterBackend struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	maxAttempts int
	retryDelay  time.Duration
	minInterval time.Duration

	mu          sync.Mutex
	lastRequest time.Time

	logger *slog.Logger
}

// NewOpenRouter creates an OpenRouter backend.
func NewOpenRouter(cfg OpenRouterConfig, logger *slog.Logger) (*OpenRouterBackend, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &OpenRouterBackend{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		maxAttempts: maxAttempts,
		retryDelay:  cfg.RetryDelay,
		minInterval: cfg.MinInterval,
		logger:      logger.With("backend", "openrouter"),
	}, nil
}

// Name returns the backend identifier.
func (o *OpenRouterBackend) Name() string {
	return "openrouter"
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message and returns the
// first choice. Attempts are paced and retried; once the retry budget is
// spent the error marks the backend unusable.
func (o *OpenRouterBackend) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	var lastErr error

	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := o.retryDelay * time.Duration(1<<attempt)
			o.logger.Warn("request failed, retrying",
				"attempt", attempt,
				"backoff", backoff,
				"error", lastErr,
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := o.pace(ctx); err != nil {
			return "", err
		}

		text, err := o.doRequest(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	return "", unusable(o.Name(), fmt.Errorf("after %d attempts: %w", o.maxAttempts, lastErr))
}

// pace enforces the minimum interval between consecutive requests.
func (o *OpenRouterBackend) pace(ctx context.Context) error {
	o.mu.Lock()
	now := time.Now()
	wait := o.minInterval - now.Sub(o.lastRequest)
	if wait < 0 {
		wait = 0
	}
	o.lastRequest = now.Add(wait)
	o.mu.Unlock()

	if wait == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

func (o *OpenRouterBackend) doRequest(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       o.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", errors.New("rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}

	var apiResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", errors.New("empty response")
	}

	return apiResp.Choices[0].Message.Content, nil
}
