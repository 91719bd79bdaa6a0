package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/footprint-tools/brig/internal/domain"
)

// AddUser inserts a user or updates the level of an existing one.
func (s *Store) AddUser(u domain.User) error {
	if u.Created.IsZero() {
		u.Created = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO users (name, level, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET level = excluded.level`,
		u.Name,
		u.Level,
		u.Created.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store: add user %s: %w", u.Name, err)
	}
	return nil
}

// RemoveUser deletes a user and reports whether it existed.
func (s *Store) RemoveUser(name string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM users WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("store: remove user %s: %w", name, err)
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

// GetUser looks up one user.
func (s *Store) GetUser(name string) (domain.User, bool, error) {
	var (
		u  domain.User
		ts string
	)
	err := s.db.QueryRow(
		`SELECT name, level, created_at FROM users WHERE name = ?`, name,
	).Scan(&u.Name, &u.Level, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}

	u.Created, err = time.Parse(time.RFC3339, ts)
	if err != nil {
		return domain.User{}, false, err
	}
	return u, true, nil
}

// ListUsers returns all users ordered by name.
func (s *Store) ListUsers() ([]domain.User, error) {
	rows, err := s.db.Query(`SELECT name, level, created_at FROM users ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.User
	for rows.Next() {
		var (
			u  domain.User
			ts string
		)
		if err := rows.Scan(&u.Name, &u.Level, &ts); err != nil {
			return nil, err
		}
		if u.Created, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
