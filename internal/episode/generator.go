// Package episode turns a chosen or researched topic into full episode
// materials: outline, talking points, script, show notes, intro/outro
// and social copy.
package episode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/afiaWhiteprints/esosa/internal/ai"
	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// SessionTypeEpisode tags stored records produced by GenerateEpisode.
const SessionTypeEpisode = "episode"

const (
	defaultDurationMinutes = 30
	defaultHostStyle       = "conversational"
	defaultAudience        = "general listeners of the show's niche"
	talkingPointCount      = 10
	interviewQuestionCount = 12
)

// Request describes one episode to generate. When Topic is empty and
// Research is set, a research session runs first and the top-ranked
// topic is used.
type Request struct {
	Topic           string
	DurationMinutes int
	HostStyle       string
	TargetAudience  string
	Research        *domain.ResearchRequest
	Publish         bool
}

// Generator builds episode content and records the covered topic.
type Generator struct {
	generator  ContentGenerator
	researcher Researcher
	store      Store
	tx         TransactionManager
	publisher  Publisher
	logger     *slog.Logger
}

func NewGenerator(
	generator ContentGenerator,
	researcher Researcher,
	store Store,
	tx TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		generator:  generator,
		researcher: researcher,
		store:      store,
		tx:         tx,
		publisher:  publisher,
		logger:     logger.With("component", "episode"),
	}
}

// GenerateEpisode produces the full content bundle for one episode. The
// outline is the only generation step that can fail the operation; every
// later step degrades to a marker and the bundle is still produced,
// persisted and recorded in the topic history.
func (g *Generator) GenerateEpisode(ctx context.Context, req Request) (*domain.EpisodeContent, error) {
	suggestion, err := g.resolveTopic(ctx, req)
	if err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	hostStyle := req.HostStyle
	if hostStyle == "" {
		hostStyle = defaultHostStyle
	}
	audience := req.TargetAudience
	if audience == "" {
		audience = defaultAudience
	}

	g.logger.Info("generating episode",
		"topic", suggestion.Title,
		"duration_minutes", duration,
	)

	outline, err := g.generator.GenerateOutline(ctx, suggestion, duration, hostStyle, audience)
	if err != nil {
		return nil, fmt.Errorf("generate outline: %w", err)
	}
	if outline.Title == "" {
		outline.Title = suggestion.Title
	}

	content := &domain.EpisodeContent{
		Topic:           suggestion.Title,
		DurationMinutes: duration,
		HostStyle:       hostStyle,
		TargetAudience:  audience,
		Outline:         outline,
		Timestamp:       time.Now().UTC(),
	}

	if points, err := g.generator.GenerateTalkingPoints(ctx, outline, talkingPointCount); err != nil {
		g.logger.Warn("talking points generation failed", "error", err)
	} else {
		content.TalkingPoints = points
	}

	prompts := g.generator.Prompts()

	if raw, err := g.generator.Generate(ctx, prompts.Script(outline, hostStyle, audience), ai.GenerateOptions{Temperature: 0.8}); err != nil {
		g.logger.Warn("script generation failed", "error", err)
		content.Script = domain.EpisodeScript{Err: fmt.Sprintf("generation failed: %v", err)}
	} else {
		content.Script = ai.ParseScript(raw)
	}

	content.IntroOutro = g.freeText(ctx, "intro/outro", prompts.IntroOutro(suggestion.Title))
	content.ShowNotes = g.freeText(ctx, "show notes", prompts.ShowNotes(outline))
	content.SocialContent = g.freeText(ctx, "social copy", prompts.SocialMedia(suggestion.Title))

	// The episode record and its history entry land together or not at
	// all; a history entry without a stored episode would block the topic
	// forever.
	var sessionID int64
	err = g.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := g.store.SaveEpisode(txCtx, *content, SessionTypeEpisode)
		if err != nil {
			return err
		}
		sessionID = id
		return g.store.AddTopicToHistory(txCtx, suggestion.Title, content.Timestamp.Format("2006-01-02"))
	})
	if err != nil {
		return nil, fmt.Errorf("persist episode: %w", err)
	}

	if req.Publish && g.publisher != nil {
		if err := g.publisher.EpisodeGenerated(ctx, sessionID, *content); err != nil {
			g.logger.Error("failed to publish episode event", "error", err)
		}
	}

	g.logger.Info("episode generated",
		"topic", suggestion.Title,
		"session_id", sessionID,
	)
	return content, nil
}

// PrepareInterview builds questions and prep materials for a guest
// interview. Background research is optional and non-fatal.
func (g *Generator) PrepareInterview(ctx context.Context, guest domain.GuestInfo, topic string, lengthMinutes int, research *domain.ResearchRequest) (*domain.InterviewPrep, error) {
	if guest.Name == "" {
		return nil, errors.New("guest name is required")
	}
	if topic == "" {
		topic = guest.Expertise
	}
	if topic == "" {
		return nil, errors.New("interview topic is required")
	}
	if lengthMinutes <= 0 {
		lengthMinutes = defaultDurationMinutes
	}

	prompts := g.generator.Prompts()

	raw, err := g.generator.Generate(ctx, prompts.InterviewQuestions(guest, topic, lengthMinutes, interviewQuestionCount), ai.GenerateOptions{Temperature: 0.8})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	prep := &domain.InterviewPrep{
		Guest:         guest,
		Topic:         topic,
		LengthMinutes: lengthMinutes,
		Questions:     ai.ParseStringList(raw),
		Timestamp:     time.Now().UTC(),
	}

	if research != nil && g.researcher != nil {
		record, err := g.researcher.Research(ctx, *research)
		if err != nil {
			g.logger.Warn("background research failed", "error", err)
		} else {
			prep.BackgroundResearch = record
		}
	}

	prep.IntroOutro = g.freeText(ctx, "intro/outro", prompts.IntroOutro(topic))
	if raw, err := g.generator.Generate(ctx, prompts.PrepNotes(guest, topic), ai.GenerateOptions{Temperature: 0.7}); err != nil {
		g.logger.Warn("prep notes generation failed", "error", err)
	} else {
		prep.PrepNotes = ai.ParseStringList(raw)
	}

	if _, err := g.store.SaveInterviewPrep(ctx, *prep); err != nil {
		g.logger.Error("failed to persist interview prep", "error", err)
	}

	return prep, nil
}

func (g *Generator) resolveTopic(ctx context.Context, req Request) (domain.TopicSuggestion, error) {
	if req.Topic != "" {
		return domain.TopicSuggestion{Title: req.Topic}, nil
	}
	if req.Research == nil {
		return domain.TopicSuggestion{}, errors.New("either a topic or a research request is required")
	}

	record, err := g.researcher.Research(ctx, *req.Research)
	if err != nil {
		return domain.TopicSuggestion{}, fmt.Errorf("research for topic: %w", err)
	}
	if len(record.RankedTopics) == 0 {
		return domain.TopicSuggestion{}, errors.New("research produced no usable topics")
	}

	top := record.RankedTopics[0]
	g.logger.Info("topic selected from research",
		"topic", top.Title,
		"unified_score", top.UnifiedScore,
		"source_platform", top.SourcePlatform,
	)
	return top, nil
}

func (g *Generator) freeText(ctx context.Context, what, prompt string) string {
	out, err := g.generator.Generate(ctx, prompt, ai.GenerateOptions{Temperature: 0.8})
	if err != nil {
		g.logger.Warn("generation step failed", "step", what, "error", err)
		return ""
	}
	return out
}
