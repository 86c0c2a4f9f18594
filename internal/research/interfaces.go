package research

import (
	"context"

	"github.com/afiaWhiteprints/esosa/internal/ai"
	"github.com/afiaWhiteprints/esosa/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// TopicAnalyzer extracts episode topic suggestions from platform
// content. The ai.Router satisfies this.
type TopicAnalyzer interface {
	AnalyzeForTopics(ctx context.Context, in ai.AnalysisInput) (domain.TopicSet, error)
}

// Store persists session records and answers topic-history queries.
type Store interface {
	SaveSession(ctx context.Context, record domain.SessionRecord, sessionType string) (int64, error)
	CheckTopicCovered(ctx context.Context, title string, threshold float64) ([]domain.HistoryMatch, error)
}

// Publisher emits pipeline events to downstream consumers.
type Publisher interface {
	ResearchCompleted(ctx context.Context, sessionID int64, record domain.SessionRecord) error
}
