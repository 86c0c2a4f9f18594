package ai

import (
	"encoding/json"
	"strings"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// ParseErrorMarker is recorded on degraded results when a model response
// could not be parsed as the expected JSON shape.
const ParseErrorMarker = "could not parse structured response"

// CleanJSONResponse strips the markdown code fences models wrap JSON in.
func CleanJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// ParseTopicSet decodes a topic-extraction response. A response that is
// not valid JSON degrades to an empty topic list with the raw text kept
// as analysis; the caller treats that as a usable result, not a failure.
func ParseTopicSet(raw string) domain.TopicSet {
	var set domain.TopicSet
	if err := json.Unmarshal([]byte(CleanJSONResponse(raw)), &set); err != nil {
		return domain.TopicSet{
			Topics:   []domain.TopicSuggestion{},
			Analysis: raw,
			Err:      ParseErrorMarker,
		}
	}
	if set.Topics == nil {
		set.Topics = []domain.TopicSuggestion{}
	}
	return set
}

// ParseOutline decodes an episode-outline response, degrading to the raw
// text on parse failure.
func ParseOutline(raw string) domain.EpisodeOutline {
	var outline domain.EpisodeOutline
	if err := json.Unmarshal([]byte(CleanJSONResponse(raw)), &outline); err != nil {
		return domain.EpisodeOutline{Raw: raw, Err: ParseErrorMarker}
	}
	return outline
}

// ParseScript decodes a full-script response, degrading to the raw text
// on parse failure.
func ParseScript(raw string) domain.EpisodeScript {
	var script domain.EpisodeScript
	if err := json.Unmarshal([]byte(CleanJSONResponse(raw)), &script); err != nil {
		return domain.EpisodeScript{Raw: raw, Err: ParseErrorMarker}
	}
	return script
}

// ParseStringList decodes a JSON string array, falling back to splitting
// the text into lines with bullets and numbering stripped.
func ParseStringList(raw string) []string {
	cleaned := CleanJSONResponse(raw)

	var list []string
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return list
	}

	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789. )")
		line = strings.TrimSpace(line)
		if line != "" {
			list = append(list, line)
		}
	}
	return list
}
