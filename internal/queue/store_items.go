package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const itemColumns = `id, track, audio_path, lyrics_path, output_path, status,
	error_message, line_count, silence_count, degraded, session_id,
	created_at, updated_at`

// Register records a discovered audio/lyric pair. An existing completed or
// failed row for the same track is reset to pending so a new run picks it up
// again; an existing pending or processing row is left untouched.
func (s *Store) Register(ctx context.Context, track, audioPath, lyricsPath string) (*Item, error) {
	ctx = ensureContext(ctx)
	now := nowUTC()
	_, err := s.execWithRetry(ctx, `
		INSERT INTO items (track, audio_path, lyrics_path, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(track) DO UPDATE SET
			audio_path = excluded.audio_path,
			lyrics_path = excluded.lyrics_path,
			status = CASE WHEN items.status IN ('completed', 'failed') THEN 'pending' ELSE items.status END,
			error_message = CASE WHEN items.status IN ('completed', 'failed') THEN '' ELSE items.error_message END,
			updated_at = excluded.updated_at`,
		track, audioPath, lyricsPath, string(StatusPending), now, now)
	if err != nil {
		return nil, fmt.Errorf("register item %q: %w", track, err)
	}
	return s.GetByTrack(ctx, track)
}

// GetByTrack fetches one ledger row by its track name.
func (s *Store) GetByTrack(ctx context.Context, track string) (*Item, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE track = ?`, track)
	return scanItem(row)
}

// MarkProcessing transitions an item to processing and stamps the batch
// session that owns it.
func (s *Store) MarkProcessing(ctx context.Context, id int64, sessionID string) error {
	return s.updateStatus(ctx, id, StatusProcessing, func(q *statusUpdate) {
		q.sessionID = &sessionID
	})
}

// MarkCompleted records a successful run along with its outcome counters.
func (s *Store) MarkCompleted(ctx context.Context, id int64, outputPath string, lineCount, silenceCount int, degraded bool) error {
	return s.updateStatus(ctx, id, StatusCompleted, func(q *statusUpdate) {
		q.outputPath = &outputPath
		q.lineCount = &lineCount
		q.silenceCount = &silenceCount
		q.degraded = &degraded
	})
}

// MarkFailed records a per-track failure message.
func (s *Store) MarkFailed(ctx context.Context, id int64, message string) error {
	return s.updateStatus(ctx, id, StatusFailed, func(q *statusUpdate) {
		q.errorMessage = &message
	})
}

type statusUpdate struct {
	outputPath   *string
	errorMessage *string
	lineCount    *int
	silenceCount *int
	degraded     *bool
	sessionID    *string
}

func (s *Store) updateStatus(ctx context.Context, id int64, status Status, mutate func(*statusUpdate)) error {
	ctx = ensureContext(ctx)
	var update statusUpdate
	if mutate != nil {
		mutate(&update)
	}

	query := "UPDATE items SET status = ?, updated_at = ?"
	args := []any{string(status), nowUTC()}
	if update.outputPath != nil {
		query += ", output_path = ?"
		args = append(args, *update.outputPath)
	}
	if update.errorMessage != nil {
		query += ", error_message = ?"
		args = append(args, *update.errorMessage)
	}
	if update.lineCount != nil {
		query += ", line_count = ?"
		args = append(args, *update.lineCount)
	}
	if update.silenceCount != nil {
		query += ", silence_count = ?"
		args = append(args, *update.silenceCount)
	}
	if update.degraded != nil {
		query += ", degraded = ?"
		args = append(args, boolToInt(*update.degraded))
	}
	if update.sessionID != nil {
		query += ", session_id = ?"
		args = append(args, *update.sessionID)
	}
	query += " WHERE id = ?"
	args = append(args, id)

	res, err := s.execWithRetry(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item %d to %s: %w", id, status, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns ledger rows ordered by track name, optionally filtered by
// status.
func (s *Store) List(ctx context.Context, statuses ...Status) ([]Item, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + itemColumns + ` FROM items`
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		placeholders := ""
		for i, status := range statuses {
			if i > 0 {
				placeholders += ", "
			}
			placeholders += "?"
			args = append(args, string(status))
		}
		query += " WHERE status IN (" + placeholders + ")"
	}
	query += " ORDER BY track"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// Summary aggregates row counts per lifecycle state.
func (s *Store) Summary(ctx context.Context) (HealthSummary, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM items GROUP BY status`)
	if err != nil {
		return HealthSummary{}, fmt.Errorf("summarize items: %w", err)
	}
	defer rows.Close()

	var summary HealthSummary
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return HealthSummary{}, fmt.Errorf("scan summary row: %w", err)
		}
		summary.Total += count
		switch Status(status) {
		case StatusPending:
			summary.Pending = count
		case StatusProcessing:
			summary.Processing = count
		case StatusCompleted:
			summary.Completed = count
		case StatusFailed:
			summary.Failed = count
		}
	}
	return summary, rows.Err()
}

// ResetStuck returns processing rows to pending. Useful after a crashed or
// interrupted run; the next `process` picks them up again.
func (s *Store) ResetStuck(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx,
		`UPDATE items SET status = ?, updated_at = ? WHERE status = ?`,
		string(StatusPending), nowUTC(), string(StatusProcessing))
	if err != nil {
		return 0, fmt.Errorf("reset stuck items: %w", err)
	}
	return res.RowsAffected()
}

// Clear removes every ledger row.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx, `DELETE FROM items`)
	if err != nil {
		return 0, fmt.Errorf("clear items: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*Item, error) {
	var (
		item      Item
		status    string
		degraded  int
		createdAt string
		updatedAt string
	)
	err := row.Scan(
		&item.ID, &item.Track, &item.AudioPath, &item.LyricsPath, &item.OutputPath,
		&status, &item.ErrorMessage, &item.LineCount, &item.SilenceCount,
		&degraded, &item.SessionID, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan item: %w", err)
	}
	item.Status = Status(status)
	item.Degraded = degraded != 0
	item.CreatedAt = parseTime(createdAt)
	item.UpdatedAt = parseTime(updatedAt)
	return &item, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
