package episode

import (
	"context"

	"github.com/afiaWhiteprints/esosa/internal/ai"
	"github.com/afiaWhiteprints/esosa/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// ContentGenerator produces episode materials. The ai.Router satisfies
// this.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string, opts ai.GenerateOptions) (string, error)
	GenerateOutline(ctx context.Context, topic domain.TopicSuggestion, durationMinutes int, hostStyle, audience string) (domain.EpisodeOutline, error)
	GenerateTalkingPoints(ctx context.Context, outline domain.EpisodeOutline, count int) ([]string, error)
	Prompts() *ai.Prompts
}

// Researcher runs a research session when an episode starts without a
// chosen topic.
type Researcher interface {
	Research(ctx context.Context, req domain.ResearchRequest) (*domain.SessionRecord, error)
}

// Store persists episode output and the covered-topic history.
type Store interface {
	SaveEpisode(ctx context.Context, content domain.EpisodeContent, sessionType string) (int64, error)
	SaveInterviewPrep(ctx context.Context, prep domain.InterviewPrep) (int64, error)
	AddTopicToHistory(ctx context.Context, topic, episodeDate string) error
}

// TransactionManager scopes the episode save and its history entry to
// one transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher emits the episode-generated event.
type Publisher interface {
	EpisodeGenerated(ctx context.Context, sessionID int64, content domain.EpisodeContent) error
}
