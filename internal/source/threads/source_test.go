package threads

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/source"
)

const searchPayload = `{
	"status": "ok",
	"data": {
		"searchResults": {
			"edges": [{
				"node": {
					"thread": {
						"thread_items": [{
							"post": {
								"id": "t-1",
								"code": "C9xyz",
								"taken_at": 1756200000,
								"caption": {"text": "hot take on AI podcast editing"},
								"user": {"username": "threadser"},
								"like_count": 310,
								"text_post_app_info": {
									"direct_reply_count": 25,
									"repost_count": 12
								}
							}
						}]
					}
				}
			}]
		}
	}
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig(baseURL string) Config {
	return Config{
		APIKey:                "test-key",
		BaseURL:               baseURL,
		Timeout:               time.Second,
		MaxAttempts:           1,
		InitialBackoff:        time.Millisecond,
		MaxBackoff:            time.Millisecond,
		MaxRequestsPerSession: 5,
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{BaseURL: "https://threads-api4.p.rapidapi.com"}, testLogger())
	assert.Error(t, err)
}

func TestSearchByKeywords_TransformsPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchPayload)
	}))
	defer srv.Close()

	adapter, err := New(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	items, err := adapter.SearchByKeywords(context.Background(), source.SearchRequest{
		Keywords: []string{"ai podcast"},
		MaxItems: 10,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "t-1", item.ID)
	assert.Equal(t, domain.PlatformThreads, item.Platform)
	assert.Equal(t, "threadser", item.Author)
	assert.Equal(t, "https://www.threads.net/@threadser/post/C9xyz", item.SourceURL)
	assert.Equal(t, int64(310), item.Engagement["likes"])
	assert.Equal(t, int64(25), item.Engagement["replies"])
	assert.Equal(t, int64(12), item.Engagement["reposts"])
}

func TestSearchByKeywords_OneCallPerKeywordUntilBudget(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"status": "ok", "data": {"searchResults": {"edges": []}}}`)
	}))
	defer srv.Close()

	adapter, err := New(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	items, err := adapter.SearchByKeywords(context.Background(), source.SearchRequest{
		Keywords: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		MaxItems: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(5), calls.Load())
}

func TestSearchByKeywords_BadStatusConsumesBudget(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"status": "error", "data": {}}`)
	}))
	defer srv.Close()

	adapter, err := New(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	items, err := adapter.SearchByKeywords(context.Background(), source.SearchRequest{
		Keywords: []string{"only"},
		MaxItems: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(1), calls.Load())
}
