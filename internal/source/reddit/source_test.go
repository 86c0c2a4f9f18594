package reddit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/source"
)

const searchPayload = `{
	"success": true,
	"data": {
		"posts": [{
			"kind": "t3",
			"data": {
				"id": "r-1",
				"title": "What mics do you use for remote interviews?",
				"selftext": "Looking for recommendations under $200.",
				"author": "audiogeek",
				"subreddit": "podcasting",
				"permalink": "/r/podcasting/comments/r-1/what_mics/",
				"created_utc": 1756200000,
				"ups": 85,
				"downs": 4,
				"score": 81,
				"num_comments": 37
			}
		}]
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
	_, err := New(Config{BaseURL: "https://reddit34.p.rapidapi.com"}, testLogger())
	assert.Error(t, err)
}

func TestSearchByKeywords_TransformsPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "week", r.URL.Query().Get("time"))
		fmt.Fprint(w, searchPayload)
	}))
	defer srv.Close()

	adapter, err := New(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	items, err := adapter.SearchByKeywords(context.Background(), source.SearchRequest{
		Keywords: []string{"podcast", "microphone"},
		MaxItems: 10,
		DaysBack: 7,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "r-1", item.ID)
	assert.Equal(t, domain.PlatformReddit, item.Platform)
	assert.True(t, strings.HasPrefix(item.Text, "What mics do you use"))
	assert.Contains(t, item.Text, "Looking for recommendations")
	assert.Equal(t, "audiogeek", item.Author)
	assert.Equal(t, "https://www.reddit.com/r/podcasting/comments/r-1/what_mics/", item.SourceURL)
	assert.Equal(t, int64(85), item.Engagement["upvotes"])
	assert.Equal(t, int64(4), item.Engagement["downvotes"])
	assert.Equal(t, int64(81), item.Engagement["score"])
	assert.Equal(t, int64(37), item.Engagement["comments"])
}

func TestSearchByKeywords_ChunksLongKeywordLists(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("query"))
		fmt.Fprint(w, `{"success": true, "data": {"posts": []}}`)
	}))
	defer srv.Close()

	adapter, err := New(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	var keywords []string
	for i := 0; i < 10; i++ {
		keywords = append(keywords, fmt.Sprintf("longish-podcast-keyword-%02d", i))
	}

	_, err = adapter.SearchByKeywords(context.Background(), source.SearchRequest{
		Keywords: keywords,
		MaxItems: 10,
	})
	require.NoError(t, err)

	require.Greater(t, len(queries), 1)
	for _, q := range queries {
		assert.LessOrEqual(t, len(q), 100)
	}
	joined := strings.Join(queries, " ")
	for _, kw := range keywords {
		assert.Contains(t, joined, kw)
	}
}

func TestSearchByKeywords_StopsAtSessionBudget(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"success": false, "message": "quota exceeded"}`)
	}))
	defer srv.Close()

	adapter, err := New(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	var keywords []string
	for i := 0; i < 40; i++ {
		keywords = append(keywords, fmt.Sprintf("very-long-podcasting-search-keyword-%02d", i))
	}

	items, err := adapter.SearchByKeywords(context.Background(), source.SearchRequest{
		Keywords: keywords,
		MaxItems: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(5), calls.Load())
}
