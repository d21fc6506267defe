package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenPath(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func sampleEvent() Event {
	return Event{
		Date:             "01/01/2025",
		HomeTeam:         "A",
		AwayTeam:         "B",
		Player:           "10",
		Minute:           "1:23",
		KickoffMinute:    "0:00",
		PhaseType:        PhaseAttack,
		MainEvent:        EventRuck,
		PossessionOrigin: OriginLineout,
		PhaseCount:       3,
		Zone:             "22A",
		Outcome:          OutcomePositive,
		GainLine:         GainLineGained,
		RuckSpeed:        "Fast",
		Penalty:          "",
		Comment:          "quick ball",
	}
}

func TestInsertEventAndListBySession(t *testing.T) {
	database := openTestDB(t)

	e := sampleEvent()
	id, err := InsertEvent(database, e)
	require.NoError(t, err)
	assert.Positive(t, id)

	events, err := ListEventsBySession(database, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, e.Date, got.Date)
	assert.Equal(t, e.HomeTeam, got.HomeTeam)
	assert.Equal(t, e.AwayTeam, got.AwayTeam)
	assert.Equal(t, e.Minute, got.Minute)
	assert.Equal(t, e.PhaseType, got.PhaseType)
	assert.Equal(t, e.PhaseCount, got.PhaseCount)
	assert.Equal(t, e.Comment, got.Comment)
	assert.Equal(t, "", got.VideoURL)
	assert.Nil(t, got.MatchID)
}

func TestListEventsBySessionNewestFirst(t *testing.T) {
	database := openTestDB(t)

	e := sampleEvent()
	first, err := InsertEvent(database, e)
	require.NoError(t, err)
	e.Minute = "2:00"
	second, err := InsertEvent(database, e)
	require.NoError(t, err)

	// An event from a different session must not appear.
	other := sampleEvent()
	other.AwayTeam = "C"
	_, err = InsertEvent(database, other)
	require.NoError(t, err)

	events, err := ListEventsBySession(database, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, second, events[0].ID)
	assert.Equal(t, first, events[1].ID)
}

func TestUpdateEventKeepsSessionIdentity(t *testing.T) {
	database := openTestDB(t)

	e := sampleEvent()
	id, err := InsertEvent(database, e)
	require.NoError(t, err)

	updated := e
	updated.Date = "31/12/2030" // must be ignored
	updated.HomeTeam = "X"      // must be ignored
	updated.AwayTeam = "Y"      // must be ignored
	updated.Player = "9"
	updated.Minute = "5:10"
	updated.KickoffMinute = "0:05"
	updated.Outcome = OutcomeNegative
	updated.PhaseCount = 7
	require.NoError(t, UpdateEvent(database, id, updated))

	// Kickoff minute changed, so the event now belongs to the new quadruple.
	events, err := ListEventsBySession(database, e.Date, e.HomeTeam, e.AwayTeam, "0:05")
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, e.Date, got.Date)
	assert.Equal(t, e.HomeTeam, got.HomeTeam)
	assert.Equal(t, e.AwayTeam, got.AwayTeam)
	assert.Equal(t, "9", got.Player)
	assert.Equal(t, "5:10", got.Minute)
	assert.Equal(t, OutcomeNegative, got.Outcome)
	assert.Equal(t, 7, got.PhaseCount)
}

func TestUpdateEventMissingIDIsNoOp(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, UpdateEvent(database, 999, sampleEvent()))
}

func TestDeleteEvent(t *testing.T) {
	database := openTestDB(t)

	e := sampleEvent()
	id, err := InsertEvent(database, e)
	require.NoError(t, err)

	require.NoError(t, DeleteEvent(database, id))

	events, err := ListEventsBySession(database, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)
	assert.Empty(t, events)

	// Deleting again is a silent no-op.
	require.NoError(t, DeleteEvent(database, id))
}

func TestMatchCRUD(t *testing.T) {
	database := openTestDB(t)

	m := Match{
		Date:          "01/01/2025",
		HomeTeam:      "A",
		AwayTeam:      "B",
		KickoffMinute: "0:00",
		VideoURL:      "https://youtu.be/dQw4w9WgXcQ",
		Name:          "A vs B 01/01/2025",
	}
	id, err := InsertMatch(database, m)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := GetMatch(database, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.Name, got.Name)
	assert.Equal(t, m.VideoURL, got.VideoURL)

	m.Name = "renamed"
	count, err := UpdateMatch(database, id, m)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = UpdateMatch(database, 999, m)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	missing, err := GetMatch(database, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	summaries, err := ListMatches(database)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "renamed", summaries[0].Name)
	assert.Equal(t, "A", summaries[0].HomeTeam)
}

func TestListMatchesNewestFirst(t *testing.T) {
	database := openTestDB(t)

	first, err := InsertMatch(database, Match{Name: "one"})
	require.NoError(t, err)
	second, err := InsertMatch(database, Match{Name: "two"})
	require.NoError(t, err)

	summaries, err := ListMatches(database)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, second, summaries[0].ID)
	assert.Equal(t, first, summaries[1].ID)
}

func TestLinkEventsToMatchIsIdempotent(t *testing.T) {
	database := openTestDB(t)

	e := sampleEvent()
	_, err := InsertEvent(database, e)
	require.NoError(t, err)
	_, err = InsertEvent(database, e)
	require.NoError(t, err)

	matchID, err := InsertMatch(database, Match{
		Date: e.Date, HomeTeam: e.HomeTeam, AwayTeam: e.AwayTeam,
		KickoffMinute: e.KickoffMinute, Name: "A vs B",
	})
	require.NoError(t, err)

	linked, err := LinkEventsToMatch(database, matchID, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, linked)

	// Re-running with the same arguments re-assigns the same set.
	linked, err = LinkEventsToMatch(database, matchID, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, linked)

	events, err := ListEventsByMatch(database, matchID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestDeleteMatchUnlinksEvents(t *testing.T) {
	database := openTestDB(t)

	e := sampleEvent()
	for i := 0; i < 3; i++ {
		_, err := InsertEvent(database, e)
		require.NoError(t, err)
	}

	matchID, err := InsertMatch(database, Match{
		Date: e.Date, HomeTeam: e.HomeTeam, AwayTeam: e.AwayTeam,
		KickoffMinute: e.KickoffMinute,
	})
	require.NoError(t, err)

	_, err = LinkEventsToMatch(database, matchID, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)

	deleted, err := DeleteMatch(database, matchID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	// Events survive, unlinked.
	events, err := ListEventsBySession(database, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for _, got := range events {
		assert.Nil(t, got.MatchID)
	}

	linked, err := ListEventsByMatch(database, matchID)
	require.NoError(t, err)
	assert.Empty(t, linked)

	summaries, err := ListMatches(database)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestDeleteMatchMissingID(t *testing.T) {
	database := openTestDB(t)
	deleted, err := DeleteMatch(database, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

func TestEndToEndSessionToMatch(t *testing.T) {
	database := openTestDB(t)

	e := Event{Date: "01/01/2025", HomeTeam: "A", AwayTeam: "B", KickoffMinute: "0:00"}
	eventID, err := InsertEvent(database, e)
	require.NoError(t, err)

	matchID, err := InsertMatch(database, Match{
		Date: "01/01/2025", HomeTeam: "A", AwayTeam: "B", KickoffMinute: "0:00",
	})
	require.NoError(t, err)

	_, err = LinkEventsToMatch(database, matchID, "01/01/2025", "A", "B", "0:00")
	require.NoError(t, err)

	events, err := ListEventsByMatch(database, matchID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)
	require.NotNil(t, events[0].MatchID)
	assert.Equal(t, matchID, *events[0].MatchID)
}

func TestStats(t *testing.T) {
	database := openTestDB(t)

	e := sampleEvent()
	e.PhaseType = PhaseAttack
	e.Outcome = OutcomePositive
	_, err := InsertEvent(database, e)
	require.NoError(t, err)
	_, err = InsertEvent(database, e)
	require.NoError(t, err)
	e.PhaseType = PhaseDefense
	e.Outcome = OutcomeNeutral
	_, err = InsertEvent(database, e)
	require.NoError(t, err)

	stats, err := SessionStats(database, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, StatRow{PhaseType: PhaseAttack, Outcome: OutcomePositive, Count: 2}, stats[0])
	assert.Equal(t, StatRow{PhaseType: PhaseDefense, Outcome: OutcomeNeutral, Count: 1}, stats[1])

	matchID, err := InsertMatch(database, Match{
		Date: e.Date, HomeTeam: e.HomeTeam, AwayTeam: e.AwayTeam, KickoffMinute: e.KickoffMinute,
	})
	require.NoError(t, err)
	_, err = LinkEventsToMatch(database, matchID, e.Date, e.HomeTeam, e.AwayTeam, e.KickoffMinute)
	require.NoError(t, err)

	matchStats, err := MatchStats(database, matchID)
	require.NoError(t, err)
	assert.Equal(t, stats, matchStats)
}
