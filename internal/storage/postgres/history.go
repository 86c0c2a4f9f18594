package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/topics"
)

// HistoryStore keeps the append-only record of topics already covered by
// published episodes.
type HistoryStore struct {
	db *sqlx.DB
}

func NewHistoryStore(db *sqlx.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// AddTopicToHistory appends one covered topic. Called exactly once per
// generated episode, never for research-only sessions.
func (s *HistoryStore) AddTopicToHistory(ctx context.Context, topic, episodeDate string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO topic_history (topic, episode_date) VALUES ($1, $2)`,
		topic, episodeDate,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// Topics returns every history entry, oldest first.
func (s *HistoryStore) Topics(ctx context.Context) ([]domain.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, episode_date, added_at FROM topic_history ORDER BY added_at`)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.Topic, &entry.EpisodeDate, &entry.AddedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CheckTopicCovered scans the whole history for titles overlapping the
// candidate at or above the threshold. The similarity lives in Go, not
// SQL; the history stays small enough that a full scan is fine.
func (s *HistoryStore) CheckTopicCovered(ctx context.Context, title string, threshold float64) ([]domain.HistoryMatch, error) {
	entries, err := s.Topics(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.HistoryMatch
	for _, entry := range entries {
		similarity := topics.Similarity(title, entry.Topic)
		if similarity >= threshold {
			matches = append(matches, domain.HistoryMatch{
				HistoryEntry: entry,
				Similarity:   similarity,
			})
		}
	}
	return matches, nil
}
