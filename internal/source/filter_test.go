package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

func TestFilterByKeywords_CaseInsensitiveSubstring(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "1", Text: "Breaking: AI Podcasting is here"},
		{ID: "2", Text: "nothing relevant"},
		{ID: "3", Text: "podcasting tips for beginners"},
	}

	filtered := FilterByKeywords(items, []string{"Podcasting", "AI"})

	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.ElementsMatch(t, []string{"Podcasting", "AI"}, filtered[0].MatchedKeywords)
	assert.Equal(t, []string{"text"}, filtered[0].MatchTypes)
	assert.Equal(t, "3", filtered[1].ID)
	assert.Equal(t, []string{"Podcasting"}, filtered[1].MatchedKeywords)
}

func TestFilterByKeywords_DoesNotMutateInput(t *testing.T) {
	items := []domain.ContentItem{{ID: "1", Text: "go concurrency"}}

	_ = FilterByKeywords(items, []string{"go"})

	assert.Nil(t, items[0].MatchedKeywords)
	assert.Nil(t, items[0].MatchTypes)
}

func TestDedupeByID(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: ""}, {ID: ""}, {ID: "c"},
	}

	unique := DedupeByID(items)

	require.Len(t, unique, 5)
	assert.Equal(t, "a", unique[0].ID)
	assert.Equal(t, "b", unique[1].ID)
	assert.Equal(t, "", unique[2].ID)
	assert.Equal(t, "", unique[3].ID)
	assert.Equal(t, "c", unique[4].ID)
}
