package domain

import "time"

// OutlineSegment is one timed block of an episode outline.
type OutlineSegment struct {
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	TalkingPoints   []string `json:"talking_points,omitempty"`
	Questions       []string `json:"questions,omitempty"`
}

// EpisodeOutline is the AI-generated structure of an episode. When the
// model response could not be parsed, Raw holds the text and Err carries
// the degradation marker.
type EpisodeOutline struct {
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	DurationMinutes int              `json:"duration_minutes,omitempty"`
	Segments        []OutlineSegment `json:"segments,omitempty"`
	CallToAction    string           `json:"call_to_action,omitempty"`
	SEOKeywords     []string         `json:"seo_keywords,omitempty"`
	PrepNotes       string           `json:"prep_notes,omitempty"`
	Raw             string           `json:"outline,omitempty"`
	Err             string           `json:"error,omitempty"`
}

// ScriptSection is one scripted block with host direction notes.
type ScriptSection struct {
	Name     string `json:"section_name"`
	Duration string `json:"duration,omitempty"`
	Script   string `json:"script"`
	Notes    string `json:"notes,omitempty"`
}

// EpisodeScript is the full generated script.
type EpisodeScript struct {
	Title           string          `json:"episode_title"`
	TotalDuration   string          `json:"total_duration,omitempty"`
	Sections        []ScriptSection `json:"script_sections,omitempty"`
	ProductionNotes string          `json:"production_notes,omitempty"`
	Raw             string          `json:"script_raw,omitempty"`
	Err             string          `json:"error,omitempty"`
}

// EpisodeContent bundles everything generated for one episode.
type EpisodeContent struct {
	Topic           string         `json:"topic"`
	DurationMinutes int            `json:"duration_minutes"`
	HostStyle       string         `json:"host_style"`
	TargetAudience  string         `json:"target_audience"`
	Outline         EpisodeOutline `json:"outline"`
	TalkingPoints   []string       `json:"talking_points,omitempty"`
	Script          EpisodeScript  `json:"full_script"`
	IntroOutro      string         `json:"intro_outro,omitempty"`
	ShowNotes       string         `json:"show_notes,omitempty"`
	SocialContent   string         `json:"social_media_content,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}

// GuestInfo describes an interview guest.
type GuestInfo struct {
	Name          string `json:"name"`
	Expertise     string `json:"expertise,omitempty"`
	Background    string `json:"background,omitempty"`
	TwitterHandle string `json:"twitter_handle,omitempty"`
}

// InterviewPrep bundles preparation materials for a guest interview.
type InterviewPrep struct {
	Guest              GuestInfo      `json:"guest_info"`
	Topic              string         `json:"interview_topic"`
	LengthMinutes      int            `json:"interview_length"`
	Questions          []string       `json:"questions,omitempty"`
	BackgroundResearch *SessionRecord `json:"background_research,omitempty"`
	IntroOutro         string         `json:"intro_outro,omitempty"`
	PrepNotes          []string       `json:"preparation_notes,omitempty"`
	Timestamp          time.Time      `json:"timestamp"`
}
