package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGemini_GenerateParsesFirstCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Contains(t, r.URL.Path, "models/gemini-2.5-flash:generateContent")

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		fmt.Fprint(w, `{"candidates": [{"content": {"parts": [{"text": "world"}]}}]}`)
	}))
	defer srv.Close()

	backend, err := NewGemini(GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: srv.URL,
		Timeout: time.Second,
	}, testLogger())
	require.NoError(t, err)

	out, err := backend.Generate(context.Background(), "hello", GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "world", out)
}

func TestGemini_FailureIsUnusable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	backend, err := NewGemini(GeminiConfig{APIKey: "k", Model: "m", BaseURL: srv.URL, Timeout: time.Second}, testLogger())
	require.NoError(t, err)

	_, err = backend.Generate(context.Background(), "hello", GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnusable)
}

func TestGemini_RequiresAPIKey(t *testing.T) {
	_, err := NewGemini(GeminiConfig{Model: "m"}, testLogger())
	assert.Error(t, err)
}

func TestOpenRouter_RetriesRateLimitThenSucceeds(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "answer"}}]}`)
	}))
	defer srv.Close()

	backend, err := NewOpenRouter(OpenRouterConfig{
		APIKey:      "test-key",
		Model:       "test/model",
		BaseURL:     srv.URL,
		Timeout:     time.Second,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
		MinInterval: 0,
	}, testLogger())
	require.NoError(t, err)

	out, err := backend.Generate(context.Background(), "q", GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "answer", out)
	assert.Equal(t, int64(2), calls.Load())
}

func TestOpenRouter_UnusableAfterExhaustingRetries(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	backend, err := NewOpenRouter(OpenRouterConfig{
		APIKey:      "test-key",
		Model:       "test/model",
		BaseURL:     srv.URL,
		Timeout:     time.Second,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	_, err = backend.Generate(context.Background(), "q", GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnusable)
	assert.Equal(t, int64(3), calls.Load())
}

func TestOpenRouter_PacesConsecutiveRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`)
	}))
	defer srv.Close()

	backend, err := NewOpenRouter(OpenRouterConfig{
		APIKey:      "test-key",
		Model:       "test/model",
		BaseURL:     srv.URL,
		Timeout:     time.Second,
		MaxAttempts: 1,
		MinInterval: 50 * time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := backend.Generate(context.Background(), "q", GenerateOptions{})
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}
