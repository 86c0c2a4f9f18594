package ai

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// At most this many content items per platform go into a topic-analysis
// prompt; more adds cost without adding signal.
const maxItemsPerPrompt = 20

// AnalysisInput carries everything a topic-extraction prompt needs.
type AnalysisInput struct {
	Niche       string
	Description string
	Keywords    []string
	Platform    domain.Platform
	Items       []domain.ContentItem
}

// Prompts holds the instruction templates sent to the AI backends. Every
// template has a built-in default and can be overridden from a YAML file.
type Prompts struct {
	TopicAnalysisTmpl      string `yaml:"topic_analysis"`
	OutlineTmpl            string `yaml:"outline"`
	TalkingPointsTmpl      string `yaml:"talking_points"`
	ScriptTmpl             string `yaml:"script"`
	IntroOutroTmpl         string `yaml:"intro_outro"`
	ShowNotesTmpl          string `yaml:"show_notes"`
	SocialMediaTmpl        string `yaml:"social_media"`
	InterviewQuestionsTmpl string `yaml:"interview_questions"`
	PrepNotesTmpl          string `yaml:"prep_notes"`
}

// DefaultPrompts returns the built-in templates.
func DefaultPrompts() *Prompts {
	return &Prompts{
		TopicAnalysisTmpl: `You are a podcast content strategist. Analyze the following %s posts for a podcast in the "%s" niche.

Podcast description: %s
Tracked keywords: %s

Posts:
%s

Respond with JSON only, using this exact shape:
{
  "topics": [
    {
      "title": "episode title",
      "description": "what the episode covers",
      "relevance_score": 8.5,
      "niche_alignment": "why this fits the niche",
      "key_points": ["point 1", "point 2"],
      "unique_angle": "what makes this episode stand out"
    }
  ],
  "trending_themes": ["theme 1"],
  "audience_sentiment": "overall sentiment in the posts",
  "engagement_insights": "what kind of content draws engagement",
  "keyword_connections": "how the tracked keywords relate to the discussion"
}
Suggest 3 to 5 topics, scored 0-10 for relevance to the niche.`,

		OutlineTmpl: `Create a podcast episode outline for the topic below.

Topic: %s
Description: %s
Key points: %s
Episode length: %d minutes
Host style: %s
Target audience: %s

Respond with JSON only:
{
  "title": "refined episode title",
  "description": "one-paragraph episode description",
  "duration_minutes": %d,
  "segments": [
    {"name": "segment name", "duration_minutes": 5, "talking_points": ["..."], "questions": ["..."]}
  ],
  "call_to_action": "closing call to action",
  "seo_keywords": ["..."],
  "prep_notes": "what the host should prepare"
}`,

		TalkingPointsTmpl: `Expand the episode "%s" into %d detailed talking points a host can speak from directly. Outline segments: %s

Respond with a JSON array of strings only.`,

		ScriptTmpl: `Write a full podcast script for the episode outlined below.

Outline: %s
Host style: %s
Target audience: %s

Respond with JSON only:
{
  "episode_title": "...",
  "total_duration": "30 minutes",
  "script_sections": [
    {"section_name": "intro", "duration": "2 minutes", "script": "word-for-word script", "notes": "delivery notes"}
  ],
  "production_notes": "music, editing and pacing notes"
}`,

		IntroOutroTmpl: `Write a podcast intro and outro for an episode about "%s". Keep the intro under 45 seconds of speaking time and the outro under 30. Label them INTRO: and OUTRO:.`,

		ShowNotesTmpl: `Write show notes for the podcast episode below. Include a hook paragraph, bullet highlights with rough timestamps, and links-to-mention placeholders.

Episode: %s
Description: %s
Segments: %s`,

		SocialMediaTmpl: `Write social media copy promoting a podcast episode about "%s": one tweet under 280 characters, one Instagram caption, and one LinkedIn post. Label each.`,

		InterviewQuestionsTmpl: `Prepare %d interview questions for a %d-minute podcast interview.

Guest: %s
Expertise: %s
Background: %s
Interview topic: %s

Order them warm-up first, depth in the middle, reflective close. Respond with a JSON array of strings only.`,

		PrepNotesTmpl: `Write preparation notes for a podcast host interviewing %s about "%s". Cover research to do beforehand, sensitivities to avoid, and follow-up angles. Respond with a JSON array of strings only.`,
	}
}

// LoadPrompts returns the defaults overlaid with any templates set in
// the YAML file at path. An empty path means defaults only.
func LoadPrompts(path string) (*Prompts, error) {
	prompts := DefaultPrompts()
	if path == "" {
		return prompts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}
	if err := yaml.Unmarshal(data, prompts); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}
	return prompts, nil
}

// TopicAnalysis renders the topic-extraction prompt for one platform's
// content.
func (p *Prompts) TopicAnalysis(in AnalysisInput) string {
	return fmt.Sprintf(p.TopicAnalysisTmpl,
		in.Platform,
		in.Niche,
		in.Description,
		strings.Join(in.Keywords, ", "),
		formatItems(in.Items),
	)
}

// Outline renders the episode-outline prompt.
func (p *Prompts) Outline(topic domain.TopicSuggestion, durationMinutes int, hostStyle, audience string) string {
	return fmt.Sprintf(p.OutlineTmpl,
		topic.Title,
		topic.Description,
		strings.Join(topic.KeyPoints, "; "),
		durationMinutes,
		hostStyle,
		audience,
		durationMinutes,
	)
}

// TalkingPoints renders the talking-points prompt.
func (p *Prompts) TalkingPoints(outline domain.EpisodeOutline, count int) string {
	var segments []string
	for _, seg := range outline.Segments {
		segments = append(segments, seg.Name)
	}
	return fmt.Sprintf(p.TalkingPointsTmpl, outline.Title, count, strings.Join(segments, ", "))
}

// Script renders the full-script prompt.
func (p *Prompts) Script(outline domain.EpisodeOutline, hostStyle, audience string) string {
	return fmt.Sprintf(p.ScriptTmpl, outlineDigest(outline), hostStyle, audience)
}

// IntroOutro renders the intro and outro prompt.
func (p *Prompts) IntroOutro(topic string) string {
	return fmt.Sprintf(p.IntroOutroTmpl, topic)
}

// ShowNotes renders the show-notes prompt.
func (p *Prompts) ShowNotes(outline domain.EpisodeOutline) string {
	var segments []string
	for _, seg := range outline.Segments {
		segments = append(segments, fmt.Sprintf("%s (%d min)", seg.Name, seg.DurationMinutes))
	}
	return fmt.Sprintf(p.ShowNotesTmpl, outline.Title, outline.Description, strings.Join(segments, ", "))
}

// SocialMedia renders the social copy prompt.
func (p *Prompts) SocialMedia(topic string) string {
	return fmt.Sprintf(p.SocialMediaTmpl, topic)
}

// InterviewQuestions renders the interview questions prompt.
func (p *Prompts) InterviewQuestions(guest domain.GuestInfo, topic string, lengthMinutes, count int) string {
	return fmt.Sprintf(p.InterviewQuestionsTmpl,
		count,
		lengthMinutes,
		guest.Name,
		guest.Expertise,
		guest.Background,
		topic,
	)
}

// PrepNotes renders the host preparation prompt.
func (p *Prompts) PrepNotes(guest domain.GuestInfo, topic string) string {
	return fmt.Sprintf(p.PrepNotesTmpl, guest.Name, topic)
}

func formatItems(items []domain.ContentItem) string {
	if len(items) > maxItemsPerPrompt {
		items = items[:maxItemsPerPrompt]
	}

	var b strings.Builder
	for _, item := range items {
		text := truncateText(item.Text, 300)
		fmt.Fprintf(&b, "- [engagement %d] %s\n", item.TotalEngagement(), strings.ReplaceAll(text, "\n", " "))
	}
	return b.String()
}

// truncateText cuts the string to at most limit bytes without splitting
// a multi-byte rune.
func truncateText(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func outlineDigest(outline domain.EpisodeOutline) string {
	if outline.Err != "" {
		return outline.Raw
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s. %s", outline.Title, outline.Description)
	for _, seg := range outline.Segments {
		fmt.Fprintf(&b, " | %s (%d min): %s", seg.Name, seg.DurationMinutes, strings.Join(seg.TalkingPoints, "; "))
	}
	return b.String()
}
