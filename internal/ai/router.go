package ai

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// Router routes generation calls to the primary backend until it proves
// unusable, then switches to the fallback for the rest of the process.
// The switch is one-way: a provider that rejected credentials or ran out
// of quota will not recover mid-run, and probing it on every call wastes
// time and budget.
type Router struct {
	mu         sync.Mutex
	primary    Backend
	fallback   Backend
	failedOver bool

	prompts *Prompts
	logger  *slog.Logger
}

// NewRouter creates a router over a primary and an optional fallback
// backend.
func NewRouter(primary, fallback Backend, prompts *Prompts, logger *slog.Logger) *Router {
	if prompts == nil {
		prompts = DefaultPrompts()
	}
	return &Router{
		primary:  primary,
		fallback: fallback,
		prompts:  prompts,
		logger:   logger.With("component", "ai_router"),
	}
}

// Active returns the backend currently serving calls.
func (r *Router) Active() Backend {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failedOver && r.fallback != nil {
		return r.fallback
	}
	return r.primary
}

// Generate sends the prompt to the active backend. When the primary
// reports itself unusable and a fallback exists, the router switches
// permanently and retries the same call once on the fallback.
func (r *Router) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	backend := r.Active()

	out, err := backend.Generate(ctx, prompt, opts)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, ErrProviderUnusable) {
		return "", err
	}

	next := r.failOver(backend)
	if next == nil {
		return "", err
	}

	r.logger.Warn("backend unusable, switching permanently",
		"from", backend.Name(),
		"to", next.Name(),
		"error", err,
	)
	return next.Generate(ctx, prompt, opts)
}

// failOver flips to the fallback if the failing backend was the primary
// and a fallback exists. Returns the backend to retry on, or nil.
func (r *Router) failOver(failed Backend) Backend {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failedOver || r.fallback == nil || failed != r.primary {
		return nil
	}
	r.failedOver = true
	return r.fallback
}

// AnalyzeForTopics runs topic extraction over one platform's content.
// Responses that fail to parse degrade to an empty topic list carrying
// the raw analysis text; only backend errors are returned as errors.
func (r *Router) AnalyzeForTopics(ctx context.Context, in AnalysisInput) (domain.TopicSet, error) {
	raw, err := r.Generate(ctx, r.prompts.TopicAnalysis(in), GenerateOptions{Temperature: 0.7})
	if err != nil {
		return domain.TopicSet{}, err
	}

	set := ParseTopicSet(raw)
	if set.Err != "" {
		r.logger.Warn("topic response was not structured, keeping raw analysis",
			"platform", in.Platform,
		)
	}
	return set, nil
}

// GenerateOutline produces an episode outline for the topic.
func (r *Router) GenerateOutline(ctx context.Context, topic domain.TopicSuggestion, durationMinutes int, hostStyle, audience string) (domain.EpisodeOutline, error) {
	raw, err := r.Generate(ctx, r.prompts.Outline(topic, durationMinutes, hostStyle, audience), GenerateOptions{Temperature: 0.8})
	if err != nil {
		return domain.EpisodeOutline{}, err
	}
	return ParseOutline(raw), nil
}

// GenerateTalkingPoints expands an outline into host-ready talking
// points.
func (r *Router) GenerateTalkingPoints(ctx context.Context, outline domain.EpisodeOutline, count int) ([]string, error) {
	raw, err := r.Generate(ctx, r.prompts.TalkingPoints(outline, count), GenerateOptions{Temperature: 0.8})
	if err != nil {
		return nil, err
	}
	return ParseStringList(raw), nil
}

// Prompts exposes the loaded prompt templates for callers that build
// free-text generations on top of Generate.
func (r *Router) Prompts() *Prompts {
	return r.prompts
}
