package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/brig/internal/domain"
)

// timestampLayout has a fixed width so timestamps sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record stores one finished execution. A zero ID is replaced with a new
// random one and a zero timestamp with the current time.
func (s *Store) Record(e domain.HistoryEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO history
		 (id, input, user, result, success, forked, error, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(),
		e.Input,
		e.User,
		e.Result,
		e.Success,
		e.Forked,
		e.Error,
		e.Timestamp.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("store: record %q: %w", e.Input, err)
	}
	return nil
}

// Recent returns executions newest first.
func (s *Store) Recent(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, input, user, result, success, forked, error, timestamp
		FROM history
	`

	var (
		clauses []string
		args    []any
	)

	if filter.User != "" {
		clauses = append(clauses, "user = ?")
		args = append(args, filter.User)
	}

	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(timestampLayout))
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		e, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Clear deletes every execution.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM history`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanHistoryEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e  domain.HistoryEntry
		id string
		ts string
	)

	if err := rows.Scan(
		&id,
		&e.Input,
		&e.User,
		&e.Result,
		&e.Success,
		&e.Forked,
		&e.Error,
		&ts,
	); err != nil {
		return domain.HistoryEntry{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("store: history id %q: %w", id, err)
	}
	e.ID = parsed

	t, err := time.Parse(timestampLayout, ts)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	e.Timestamp = t

	return e, nil
}
