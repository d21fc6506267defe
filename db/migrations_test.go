package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// oldSchema is the events table as it existed before video_url and
// match_id were added.
const oldSchema = `
CREATE TABLE events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    match_date TEXT,
    home_team TEXT,
    away_team TEXT,
    player TEXT,
    minute TEXT,
    kickoff_minute TEXT,
    phase_type TEXT,
    main_event TEXT,
    possession_origin TEXT,
    phase_count INTEGER,
    zone TEXT,
    outcome TEXT,
    gain_line TEXT,
    ruck_speed TEXT,
    penalty TEXT,
    comment TEXT
)`

func TestMigrateUpgradesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data.db")

	raw, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = raw.Exec(oldSchema)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO events (match_date, home_team, away_team, kickoff_minute)
		VALUES ('01/01/2025', 'A', 'B', '0:00')`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	database, err := OpenPath(dbPath)
	require.NoError(t, err)
	defer database.Close()

	// Existing rows survive and the added columns are usable.
	events, err := ListEventsBySession(database, "01/01/2025", "A", "B", "0:00")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "", events[0].VideoURL)
	assert.Nil(t, events[0].MatchID)
}

func TestMigrateIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data.db")

	database, err := OpenPath(dbPath)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	database, err = OpenPath(dbPath)
	require.NoError(t, err)
	defer database.Close()

	for _, col := range []string{"video_url", "match_id"} {
		exists, err := columnExists(database, "events", col)
		require.NoError(t, err)
		assert.True(t, exists, col)
	}
}
