package db

import (
	"database/sql"
	"fmt"
)

// StatRow is one aggregate bucket: the number of tagged events for a
// phase type / outcome combination.
type StatRow struct {
	PhaseType string
	Outcome   string
	Count     int
}

// MatchStats returns event counts grouped by phase type and outcome for
// all events linked to the given match.
func MatchStats(db *sql.DB, matchID int64) ([]StatRow, error) {
	rows, err := db.Query(SelectMatchStatsSQL, matchID)
	if err != nil {
		return nil, fmt.Errorf("select match stats: %w", err)
	}
	defer rows.Close()
	return scanStats(rows)
}

// SessionStats returns event counts grouped by phase type and outcome for
// all events sharing the given session quadruple, linked or not.
func SessionStats(db *sql.DB, date, homeTeam, awayTeam, kickoffMinute string) ([]StatRow, error) {
	rows, err := db.Query(SelectSessionStatsSQL, date, homeTeam, awayTeam, kickoffMinute)
	if err != nil {
		return nil, fmt.Errorf("select session stats: %w", err)
	}
	defer rows.Close()
	return scanStats(rows)
}

func scanStats(rows *sql.Rows) ([]StatRow, error) {
	var stats []StatRow
	for rows.Next() {
		var s StatRow
		var phase, outcome sql.NullString
		if err := rows.Scan(&phase, &outcome, &s.Count); err != nil {
			return nil, fmt.Errorf("scan stat row: %w", err)
		}
		s.PhaseType = phase.String
		s.Outcome = outcome.String
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
