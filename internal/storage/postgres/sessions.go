// Package postgres persists research and episode sessions plus the
// topic history.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// ErrSessionNotFound is returned when a session id does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists full session records as JSONB payloads with a
// thin indexed envelope (type, keywords, platforms, timestamp) for
// listing without deserializing.
type SessionStore struct {
	db *sqlx.DB
}

func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db}
}

// SaveSession writes one immutable session record and returns its id.
func (s *SessionStore) SaveSession(ctx context.Context, record domain.SessionRecord, sessionType string) (int64, error) {
	platforms := make(pq.StringArray, 0, len(record.PlatformsAttempted))
	for _, p := range record.PlatformsAttempted {
		platforms = append(platforms, string(p))
	}
	return s.saveRaw(ctx, sessionType, record.SearchKeywords, platforms, record, record.Timestamp)
}

// SaveEpisode persists generated episode content as a session of the
// given type.
func (s *SessionStore) SaveEpisode(ctx context.Context, content domain.EpisodeContent, sessionType string) (int64, error) {
	return s.saveRaw(ctx, sessionType, []string{content.Topic}, nil, content, content.Timestamp)
}

// SaveInterviewPrep persists interview preparation materials.
func (s *SessionStore) SaveInterviewPrep(ctx context.Context, prep domain.InterviewPrep) (int64, error) {
	return s.saveRaw(ctx, "interview_prep", []string{prep.Topic}, nil, prep, prep.Timestamp)
}

func (s *SessionStore) saveRaw(ctx context.Context, sessionType string, keywords []string, platforms pq.StringArray, payload any, ts time.Time) (int64, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal session: %w", err)
	}

	query := `
		INSERT INTO sessions (session_type, keywords, platforms, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if keywords == nil {
		keywords = []string{}
	}
	if platforms == nil {
		platforms = pq.StringArray{}
	}

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		sessionType,
		pq.StringArray(keywords),
		platforms,
		raw,
		ts,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}

	return id, nil
}

// ListSessions returns the newest sessions first, optionally filtered by
// type. Limit <= 0 means a default page of 20.
func (s *SessionStore) ListSessions(ctx context.Context, sessionType string, limit int) ([]domain.SessionInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, session_type, keywords, platforms, created_at
		FROM sessions`
	args := []any{}
	if sessionType != "" {
		query += ` WHERE session_type = $1`
		args = append(args, sessionType)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.SessionInfo
	for rows.Next() {
		var (
			info      domain.SessionInfo
			keywords  pq.StringArray
			platforms pq.StringArray
		)
		if err := rows.Scan(&info.ID, &info.Type, &keywords, &platforms, &info.Timestamp); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		info.Keywords = keywords
		for _, p := range platforms {
			info.Platforms = append(info.Platforms, domain.Platform(p))
		}
		sessions = append(sessions, info)
	}
	return sessions, rows.Err()
}

// LoadSession returns the full record and type of one stored session.
func (s *SessionStore) LoadSession(ctx context.Context, id int64) (*domain.SessionRecord, string, error) {
	var (
		sessionType string
		payload     []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT session_type, payload FROM sessions WHERE id = $1`, id,
	).Scan(&sessionType, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrSessionNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("load session: %w", err)
	}

	var record domain.SessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, "", fmt.Errorf("unmarshal session: %w", err)
	}
	return &record, sessionType, nil
}

// UsageStats summarizes what has been stored so far.
func (s *SessionStore) UsageStats(ctx context.Context) (*domain.UsageStats, error) {
	stats := &domain.UsageStats{SessionsByType: make(map[string]int)}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_type, COUNT(*) FROM sessions GROUP BY session_type`)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sessionType string
			count       int
		)
		if err := rows.Scan(&sessionType, &count); err != nil {
			return nil, fmt.Errorf("scan session count: %w", err)
		}
		stats.SessionsByType[sessionType] = count
		stats.TotalSessions += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM topic_history`,
	).Scan(&stats.TopicsCovered); err != nil {
		return nil, fmt.Errorf("count topic history: %w", err)
	}

	last, err := s.ListSessions(ctx, "", 1)
	if err != nil {
		return nil, err
	}
	if len(last) > 0 {
		stats.LastSession = &last[0]
	}

	return stats, nil
}
