package history

import (
	"database/sql"
	"fmt"
	"time"
)

// Event is one recorded hotkey dispatch. Combo and Action hold their
// display forms so rows stay readable after key tables change.
type Event struct {
	ID     int64
	At     time.Time
	Combo  string
	Action string
	Args   string
	OK     bool
	Detail string
}

// Append saves an event and assigns its ID. A zero At is filled with
// the current time.
func (s *Store) Append(ev *Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	query := `
		INSERT INTO events (timestamp, combo, action, args, ok, detail)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.conn.Exec(query,
		ev.At.UTC(), ev.Combo, ev.Action, ev.Args, ev.OK, ev.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	ev.ID = id
	return nil
}

// Recent retrieves events with pagination, newest first.
func (s *Store) Recent(limit, offset int) ([]Event, error) {
	query := `
		SELECT id, timestamp, combo, action, args, ok, detail
		FROM events
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.conn.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var detail sql.NullString

		err := rows.Scan(&ev.ID, &ev.At, &ev.Combo, &ev.Action, &ev.Args, &ev.OK, &detail)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if detail.Valid {
			ev.Detail = detail.String
		}

		events = append(events, ev)
	}

	return events, rows.Err()
}

// Count returns the total number of recorded events.
func (s *Store) Count() (int, error) {
	var count int
	err := s.conn.QueryRow("SELECT COUNT(*) FROM events").Scan(&count)
	return count, err
}

// Prune deletes everything but the newest keep events and reports how
// many rows went.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	query := `
		DELETE FROM events
		WHERE id NOT IN (
			SELECT id FROM events
			ORDER BY timestamp DESC, id DESC
			LIMIT ?
		)
	`

	result, err := s.conn.Exec(query, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
