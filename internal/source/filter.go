package source

import (
	"strings"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// FilterByKeywords keeps items whose text contains any keyword,
// case-insensitive substring match. Matching items are tagged with the
// keywords that matched and the field type; non-matching items are
// dropped. The input slice is never mutated.
func FilterByKeywords(items []domain.ContentItem, keywords []string) []domain.ContentItem {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	var filtered []domain.ContentItem
	for _, item := range items {
		text := strings.ToLower(item.Text)

		var matched []string
		for i, kw := range lowered {
			if kw != "" && strings.Contains(text, kw) {
				matched = append(matched, keywords[i])
			}
		}
		if len(matched) == 0 {
			continue
		}

		tagged := item
		tagged.MatchedKeywords = matched
		tagged.MatchTypes = []string{"text"}
		filtered = append(filtered, tagged)
	}

	return filtered
}
