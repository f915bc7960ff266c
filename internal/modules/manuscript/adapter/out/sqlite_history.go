package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"writingbuddy/internal/modules/manuscript/domain"

	_ "modernc.org/sqlite"
)

// Fixed width so that text order is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteHistoryStore struct {
	db *sql.DB
}

func NewSQLiteHistoryStore(dbPath string) (*SQLiteHistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteHistoryStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteHistoryStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  path TEXT NOT NULL,
  started_at TEXT NOT NULL,
  finished_at TEXT NOT NULL,
  words INTEGER NOT NULL,
  active_seconds INTEGER NOT NULL,
  word_goal INTEGER NOT NULL,
  time_goal_seconds INTEGER NOT NULL,
  goals_achieved INTEGER NOT NULL,
  resets INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_finished_at ON sessions(finished_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) Record(ctx context.Context, record domain.Record) error {
	const stmt = `
INSERT INTO sessions (id, title, path, started_at, finished_at, words, active_seconds, word_goal, time_goal_seconds, goals_achieved, resets)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		record.ID,
		record.Title,
		record.Path,
		record.StartedAt.UTC().Format(timeLayout),
		record.FinishedAt.UTC().Format(timeLayout),
		record.Words,
		int64(record.Active/time.Second),
		record.WordGoal,
		int64(record.TimeGoal/time.Second),
		record.GoalsAchieved,
		record.Resets,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Recent lists the newest sessions first.
func (s *SQLiteHistoryStore) Recent(ctx context.Context, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, title, path, started_at, finished_at, words, active_seconds, word_goal, time_goal_seconds, goals_achieved, resets
FROM sessions
ORDER BY finished_at DESC, id ASC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Record, 0, limit)
	for rows.Next() {
		var (
			item                     domain.Record
			startedAt, finishedAt    string
			activeSecs, timeGoalSecs int64
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Path, &startedAt, &finishedAt, &item.Words, &activeSecs, &item.WordGoal, &timeGoalSecs, &item.GoalsAchieved, &item.Resets); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if item.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if item.FinishedAt, err = time.Parse(timeLayout, finishedAt); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		item.Active = time.Duration(activeSecs) * time.Second
		item.TimeGoal = time.Duration(timeGoalSecs) * time.Second
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}
