package db

import (
	_ "embed"
)

// Schema

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Event queries

//go:embed sql/insert_event.sql
var InsertEventSQL string

//go:embed sql/update_event.sql
var UpdateEventSQL string

//go:embed sql/delete_event.sql
var DeleteEventSQL string

//go:embed sql/select_events_by_session.sql
var SelectEventsBySessionSQL string

//go:embed sql/select_events_by_match.sql
var SelectEventsByMatchSQL string

//go:embed sql/select_event_by_id.sql
var SelectEventByIDSQL string

// Match queries

//go:embed sql/insert_match.sql
var InsertMatchSQL string

//go:embed sql/update_match.sql
var UpdateMatchSQL string

//go:embed sql/delete_match.sql
var DeleteMatchSQL string

//go:embed sql/unlink_match_events.sql
var UnlinkMatchEventsSQL string

//go:embed sql/select_matches.sql
var SelectMatchesSQL string

//go:embed sql/select_match_by_id.sql
var SelectMatchByIDSQL string

//go:embed sql/link_events_to_match.sql
var LinkEventsToMatchSQL string

// Aggregate queries

//go:embed sql/select_match_stats.sql
var SelectMatchStatsSQL string

//go:embed sql/select_session_stats.sql
var SelectSessionStatsSQL string
