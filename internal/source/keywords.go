package source

import (
	"math/rand"
	"strings"
)

// ChunkKeywords splits keywords into chunks whose rendered query stays
// under the platform's search length ceiling. Remote search endpoints
// silently truncate or reject over-length queries; splitting keeps every
// keyword instead of losing the tail. The overhead is the per-keyword
// cost beyond the keyword itself (quoting, separators). Every keyword
// lands in exactly one chunk, in order.
func ChunkKeywords(keywords []string, maxQueryLen, overhead int) [][]string {
	var chunks [][]string
	var current []string
	currentLen := 0

	for _, kw := range keywords {
		cost := len(kw) + overhead
		if currentLen+cost > maxQueryLen && len(current) > 0 {
			chunks = append(chunks, current)
			current = []string{kw}
			currentLen = cost
		} else {
			current = append(current, kw)
			currentLen += cost
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	return chunks
}

// RenderQuery joins a chunk into the space-separated query string sent to
// the platform.
func RenderQuery(chunk []string) string {
	return strings.Join(chunk, " ")
}

// SampleKeywords picks a uniform random sample of n keywords without
// replacement, trading search completeness for call-budget conservation.
// When the list already fits it is returned unchanged.
func SampleKeywords(keywords []string, n int) []string {
	if n <= 0 || len(keywords) <= n {
		return keywords
	}

	perm := rand.Perm(len(keywords))
	sampled := make([]string, n)
	for i := 0; i < n; i++ {
		sampled[i] = keywords[perm[i]]
	}
	return sampled
}
