package session

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/rugby-analysis-cli/db"
)

// fakePlayer satisfies VideoSource for tests.
type fakePlayer struct {
	url string
}

func (f *fakePlayer) CurrentURL() string { return f.url }

func testStore(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.OpenPath(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testSession() Session {
	return Session{Date: "01/01/2025", HomeTeam: "A", AwayTeam: "B", KickoffMinute: "0:00"}
}

func testForm(s Session) EventForm {
	return EventForm{
		Session:   s,
		Player:    "10",
		Minute:    "1:23",
		PhaseType: db.PhaseAttack,
		MainEvent: db.EventRuck,
		Outcome:   db.OutcomePositive,
	}
}

func TestSaveRejectsIncompleteSession(t *testing.T) {
	store := testStore(t)
	tagger := NewTagger(store, testSession(), nil)

	form := testForm(Session{Date: "01/01/2025", HomeTeam: "A"})
	_, err := tagger.Save(form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "session", verr.Field)

	// Nothing was written.
	events, err := tagger.Events()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSaveAppendsWhenSessionMatchesDisplayed(t *testing.T) {
	store := testStore(t)
	s := testSession()
	tagger := NewTagger(store, s, nil)

	result, err := tagger.Save(testForm(s))
	require.NoError(t, err)
	assert.Equal(t, Appended, result.Outcome)
	assert.Positive(t, result.EventID)
	require.NotNil(t, result.Event)
	assert.Equal(t, "1:23", result.Event.Minute)
}

func TestSaveReloadsWhenSessionDiverged(t *testing.T) {
	store := testStore(t)
	s := testSession()
	tagger := NewTagger(store, s, nil)

	// An event already on screen for the displayed session.
	_, err := tagger.Save(testForm(s))
	require.NoError(t, err)

	// The form's session fields changed but the view still shows s.
	other := s
	other.AwayTeam = "C"
	result, err := tagger.Save(testForm(other))
	require.NoError(t, err)
	assert.Equal(t, Reloaded, result.Outcome)

	// The reload carries the displayed filter only, never a mixture.
	require.Len(t, result.Events, 1)
	assert.Equal(t, "B", result.Events[0].AwayTeam)
}

func TestSaveUpdatesWhenEditing(t *testing.T) {
	store := testStore(t)
	s := testSession()
	tagger := NewTagger(store, s, nil)

	created, err := tagger.Save(testForm(s))
	require.NoError(t, err)

	tagger.BeginEdit(created.EventID)
	assert.Equal(t, created.EventID, tagger.Editing())

	form := testForm(s)
	form.Minute = "7:45"
	form.Outcome = db.OutcomeNegative
	result, err := tagger.Save(form)
	require.NoError(t, err)
	assert.Equal(t, RefreshRow, result.Outcome)
	assert.Equal(t, created.EventID, result.EventID)

	// The marker is cleared; a second save inserts.
	assert.EqualValues(t, 0, tagger.Editing())

	events, err := tagger.Events()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "7:45", events[0].Minute)
	assert.Equal(t, db.OutcomeNegative, events[0].Outcome)
}

func TestSaveDefaultsVideoURLFromPlayer(t *testing.T) {
	store := testStore(t)
	s := testSession()
	player := &fakePlayer{url: "https://youtu.be/dQw4w9WgXcQ"}
	tagger := NewTagger(store, s, player)

	result, err := tagger.Save(testForm(s))
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", result.Event.VideoURL)

	// Player gone: the last-known session URL takes over.
	player.url = ""
	result, err = tagger.Save(testForm(s))
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", result.Event.VideoURL)
}

func TestSaveRejectsInvalidVideoURL(t *testing.T) {
	store := testStore(t)
	s := testSession()
	tagger := NewTagger(store, s, nil)

	form := testForm(s)
	form.VideoURL = "not a url"
	_, err := tagger.Save(form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "video_url", verr.Field)

	events, listErr := tagger.Events()
	require.NoError(t, listErr)
	assert.Empty(t, events)
}

func TestDeleteCancelsPendingEdit(t *testing.T) {
	store := testStore(t)
	s := testSession()
	tagger := NewTagger(store, s, nil)

	created, err := tagger.Save(testForm(s))
	require.NoError(t, err)

	tagger.BeginEdit(created.EventID)
	require.NoError(t, tagger.Delete(created.EventID))
	assert.EqualValues(t, 0, tagger.Editing())
}

func TestClearVariableKeepsSessionFields(t *testing.T) {
	s := testSession()
	form := testForm(s)
	form.Comment = "slow ruck"
	form.PhaseCount = 4

	form.ClearVariable()
	assert.Equal(t, s, form.Session)
	assert.Empty(t, form.Player)
	assert.Empty(t, form.Minute)
	assert.Empty(t, form.Comment)
	assert.Zero(t, form.PhaseCount)
}

func TestSaveAsMatchLinksSessionEvents(t *testing.T) {
	store := testStore(t)
	s := testSession()
	tagger := NewTagger(store, s, nil)

	for i := 0; i < 2; i++ {
		_, err := tagger.Save(testForm(s))
		require.NoError(t, err)
	}

	matchID, linked, err := tagger.SaveAsMatch("", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, linked)
	assert.Equal(t, matchID, tagger.SelectedMatch())

	m, err := db.GetMatch(store, matchID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "A vs B 01/01/2025", m.Name)

	events, err := db.ListEventsByMatch(store, matchID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestSelectMatchSwitchesDisplayedSession(t *testing.T) {
	store := testStore(t)
	tagger := NewTagger(store, Session{}, nil)

	matchID, err := db.InsertMatch(store, db.Match{
		Date: "02/02/2025", HomeTeam: "C", AwayTeam: "D", KickoffMinute: "0:10",
		VideoURL: "https://youtu.be/dQw4w9WgXcQ", Name: "C vs D",
	})
	require.NoError(t, err)

	m, err := tagger.SelectMatch(matchID)
	require.NoError(t, err)
	require.NotNil(t, m)

	displayed := tagger.Displayed()
	assert.Equal(t, "02/02/2025", displayed.Date)
	assert.Equal(t, "C", displayed.HomeTeam)
	assert.Equal(t, "D", displayed.AwayTeam)
	assert.Equal(t, "0:10", displayed.KickoffMinute)

	missing, err := tagger.SelectMatch(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLinkSession(t *testing.T) {
	store := testStore(t)
	s := testSession()
	tagger := NewTagger(store, s, nil)

	_, err := tagger.Save(testForm(s))
	require.NoError(t, err)

	matchID, err := db.InsertMatch(store, db.Match{
		Date: s.Date, HomeTeam: s.HomeTeam, AwayTeam: s.AwayTeam, KickoffMinute: s.KickoffMinute,
	})
	require.NoError(t, err)

	linked, err := tagger.LinkSession(matchID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, linked)
}
