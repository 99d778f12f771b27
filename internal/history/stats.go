package history

import (
	"fmt"
)

// ActionStats represents dispatch counts grouped by action.
type ActionStats struct {
	Action   string
	Total    int
	OKCount  int
	Failures int
}

// Stats retrieves per-action dispatch counts for the last N days,
// busiest actions first.
func (s *Store) Stats(days int) ([]ActionStats, error) {
	query := `
		SELECT
			action,
			COUNT(*) as total,
			SUM(CASE WHEN ok = 1 THEN 1 ELSE 0 END) as ok_count,
			SUM(CASE WHEN ok = 0 THEN 1 ELSE 0 END) as failures
		FROM events
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
		GROUP BY action
		ORDER BY total DESC, action ASC
	`

	rows, err := s.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query action stats: %w", err)
	}
	defer rows.Close()

	var stats []ActionStats
	for rows.Next() {
		var st ActionStats
		err := rows.Scan(&st.Action, &st.Total, &st.OKCount, &st.Failures)
		if err != nil {
			return nil, fmt.Errorf("failed to scan action stats: %w", err)
		}
		stats = append(stats, st)
	}

	return stats, rows.Err()
}
