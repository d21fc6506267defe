package db

import (
	"database/sql"
	"fmt"
)

// InsertEvent inserts a new event and returns its ID. An unset VideoURL
// is stored as the empty string; MatchID starts NULL (unlinked).
func InsertEvent(db *sql.DB, e Event) (int64, error) {
	result, err := db.Exec(InsertEventSQL,
		e.Date, e.HomeTeam, e.AwayTeam, e.Player, e.Minute, e.KickoffMinute,
		e.PhaseType, e.MainEvent, e.PossessionOrigin, e.PhaseCount, e.Zone,
		e.Outcome, e.GainLine, e.RuckSpeed, e.Penalty, e.Comment, e.VideoURL)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return result.LastInsertId()
}

// UpdateEvent replaces the mutable fields of the event with the given ID.
// Date, HomeTeam and AwayTeam are never touched. A missing ID is a silent
// no-op; callers that need to detect it must count rows themselves.
func UpdateEvent(db *sql.DB, id int64, e Event) error {
	_, err := db.Exec(UpdateEventSQL,
		e.Player, e.Minute, e.KickoffMinute, e.PhaseType, e.MainEvent,
		e.PossessionOrigin, e.PhaseCount, e.Zone, e.Outcome, e.GainLine,
		e.RuckSpeed, e.Penalty, e.Comment, e.VideoURL, id)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent removes the event unconditionally. No cascade, no
// not-found signal.
func DeleteEvent(db *sql.DB, id int64) error {
	_, err := db.Exec(DeleteEventSQL, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ListEventsBySession returns all events whose four session fields equal
// the given quadruple, newest first.
func ListEventsBySession(db *sql.DB, date, homeTeam, awayTeam, kickoffMinute string) ([]Event, error) {
	rows, err := db.Query(SelectEventsBySessionSQL, date, homeTeam, awayTeam, kickoffMinute)
	if err != nil {
		return nil, fmt.Errorf("select events by session: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListEventsByMatch returns all events linked to the given match, newest first.
func ListEventsByMatch(db *sql.DB, matchID int64) ([]Event, error) {
	rows, err := db.Query(SelectEventsByMatchSQL, matchID)
	if err != nil {
		return nil, fmt.Errorf("select events by match: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// GetEvent fetches a single event by ID. Returns nil if not found.
func GetEvent(db *sql.DB, id int64) (*Event, error) {
	row := db.QueryRow(SelectEventByIDSQL, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select event by id: %w", err)
	}
	return e, nil
}

// InsertMatch inserts a new match and returns its ID.
func InsertMatch(db *sql.DB, m Match) (int64, error) {
	result, err := db.Exec(InsertMatchSQL,
		m.Date, m.HomeTeam, m.AwayTeam, m.KickoffMinute, m.VideoURL, m.Name)
	if err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	return result.LastInsertId()
}

// UpdateMatch replaces all fields of the match with the given ID and
// returns the number of rows changed (0 if the ID does not exist).
func UpdateMatch(db *sql.DB, id int64, m Match) (int64, error) {
	result, err := db.Exec(UpdateMatchSQL,
		m.Date, m.HomeTeam, m.AwayTeam, m.KickoffMinute, m.VideoURL, m.Name, id)
	if err != nil {
		return 0, fmt.Errorf("update match: %w", err)
	}
	return result.RowsAffected()
}

// DeleteMatch unlinks every event referencing the match (match_id set to
// NULL), then deletes the match row, as one transaction. Events always
// outlive their match. Returns the number of match rows deleted.
func DeleteMatch(db *sql.DB, id int64) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin delete match: %w", err)
	}

	if _, err := tx.Exec(UnlinkMatchEventsSQL, id); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("unlink match events: %w", err)
	}

	result, err := tx.Exec(DeleteMatchSQL, id)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete match: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("count deleted matches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete match: %w", err)
	}
	return deleted, nil
}

// ListMatches returns a projection of all matches, newest first.
func ListMatches(db *sql.DB) ([]MatchSummary, error) {
	rows, err := db.Query(SelectMatchesSQL)
	if err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchSummary
	for rows.Next() {
		var m MatchSummary
		var name, date, home, away sql.NullString
		if err := rows.Scan(&m.ID, &name, &date, &home, &away); err != nil {
			return nil, fmt.Errorf("scan match summary: %w", err)
		}
		m.Name = name.String
		m.Date = date.String
		m.HomeTeam = home.String
		m.AwayTeam = away.String
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// GetMatch fetches a full match by ID. Returns nil if not found.
func GetMatch(db *sql.DB, id int64) (*Match, error) {
	var m Match
	var date, home, away, kickoff, videoURL, name sql.NullString
	err := db.QueryRow(SelectMatchByIDSQL, id).
		Scan(&m.ID, &date, &home, &away, &kickoff, &videoURL, &name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select match by id: %w", err)
	}
	m.Date = date.String
	m.HomeTeam = home.String
	m.AwayTeam = away.String
	m.KickoffMinute = kickoff.String
	m.VideoURL = videoURL.String
	m.Name = name.String
	return &m, nil
}

// LinkEventsToMatch sets match_id on every event whose session quadruple
// equals the given one, and returns the number of events linked. This is
// the only mechanism that associates events with a match; re-running with
// the same arguments re-assigns the same set.
func LinkEventsToMatch(db *sql.DB, matchID int64, date, homeTeam, awayTeam, kickoffMinute string) (int64, error) {
	result, err := db.Exec(LinkEventsToMatchSQL, matchID, date, homeTeam, awayTeam, kickoffMinute)
	if err != nil {
		return 0, fmt.Errorf("link events to match: %w", err)
	}
	return result.RowsAffected()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEvent scans one events row into an Event, mapping NULLs to zero
// values and a NULL match_id to nil.
func scanEvent(s scanner) (*Event, error) {
	var e Event
	var player, minute, kickoff, phase, mainEvent, origin sql.NullString
	var zone, outcome, gainLine, ruckSpeed, penalty, comment, videoURL sql.NullString
	var phaseCount sql.NullInt64
	var matchID sql.NullInt64

	err := s.Scan(&e.ID, &e.Date, &e.HomeTeam, &e.AwayTeam, &player, &minute,
		&kickoff, &phase, &mainEvent, &origin, &phaseCount, &zone, &outcome,
		&gainLine, &ruckSpeed, &penalty, &comment, &videoURL, &matchID)
	if err != nil {
		return nil, err
	}

	e.Player = player.String
	e.Minute = minute.String
	e.KickoffMinute = kickoff.String
	e.PhaseType = phase.String
	e.MainEvent = mainEvent.String
	e.PossessionOrigin = origin.String
	e.PhaseCount = int(phaseCount.Int64)
	e.Zone = zone.String
	e.Outcome = outcome.String
	e.GainLine = gainLine.String
	e.RuckSpeed = ruckSpeed.String
	e.Penalty = penalty.String
	e.Comment = comment.String
	e.VideoURL = videoURL.String
	if matchID.Valid {
		id := matchID.Int64
		e.MatchID = &id
	}
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}
