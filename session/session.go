// Package session holds the in-memory tagging state for one sitting: the
// current session filter, the edit-in-progress marker, and the save/edit
// reconciliation that decides between inserting and updating an event.
package session

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/user/rugby-analysis-cli/db"
	"github.com/user/rugby-analysis-cli/pkg/videourl"
)

// Session identifies one tagging session: events sharing these four
// fields belong together even without an explicit match link.
type Session struct {
	Date          string
	HomeTeam      string
	AwayTeam      string
	KickoffMinute string
}

// Equal reports whether two sessions identify the same quadruple.
func (s Session) Equal(other Session) bool {
	return s.Date == other.Date &&
		s.HomeTeam == other.HomeTeam &&
		s.AwayTeam == other.AwayTeam &&
		s.KickoffMinute == other.KickoffMinute
}

// Complete reports whether all four identifying fields are set.
func (s Session) Complete() bool {
	return strings.TrimSpace(s.Date) != "" &&
		strings.TrimSpace(s.HomeTeam) != "" &&
		strings.TrimSpace(s.AwayTeam) != "" &&
		strings.TrimSpace(s.KickoffMinute) != ""
}

// Label returns "home vs away date", the default match name.
func (s Session) Label() string {
	return fmt.Sprintf("%s vs %s %s", s.HomeTeam, s.AwayTeam, s.Date)
}

// ValidationError is returned when a save is rejected before any store
// mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// VideoSource is the video collaborator as seen by the save flow: it
// only needs to answer which URL is currently loaded, if any.
type VideoSource interface {
	CurrentURL() string
}

// EventForm carries one form submission: the session fields plus the
// per-event variable fields.
type EventForm struct {
	Session          Session
	Player           string
	Minute           string
	PhaseType        string
	MainEvent        string
	PossessionOrigin string
	PhaseCount       int
	Zone             string
	Outcome          string
	GainLine         string
	RuckSpeed        string
	Penalty          string
	Comment          string
	VideoURL         string
}

// ClearVariable resets every field except the session-identifying ones,
// so consecutive entries in one sitting keep the match context.
func (f *EventForm) ClearVariable() {
	session := f.Session
	*f = EventForm{Session: session}
}

// SaveOutcome describes how the displayed list should change after a save.
type SaveOutcome int

const (
	// RefreshRow means an existing row was updated in place.
	RefreshRow SaveOutcome = iota
	// Appended means the new event belongs to the displayed session and
	// can be added to the list without a reload.
	Appended
	// Reloaded means the session fields changed before the save resolved;
	// Events carries a fresh load of the displayed filter.
	Reloaded
)

// SaveResult reports what a save did and what the view should show.
type SaveResult struct {
	Outcome SaveOutcome
	EventID int64
	// Event is the saved record (set for RefreshRow and Appended).
	Event *db.Event
	// Events is a full reload of the displayed filter (set for Reloaded).
	Events []db.Event
}

// Tagger reconciles form submissions against the store for one sitting.
type Tagger struct {
	store     *sql.DB
	displayed Session
	editingID *int64
	video     VideoSource
	// lastVideoURL is the most recent URL saved or loaded in this session.
	lastVideoURL string
	// matchID is the currently selected match, if any.
	matchID *int64
}

// NewTagger creates a Tagger over the given store and displayed session.
// The video source may be nil when no player is attached.
func NewTagger(store *sql.DB, displayed Session, video VideoSource) *Tagger {
	return &Tagger{store: store, displayed: displayed, video: video}
}

// Displayed returns the session filter the view is currently showing.
func (t *Tagger) Displayed() Session {
	return t.displayed
}

// SetDisplayed switches the view to a different session filter.
func (t *Tagger) SetDisplayed(s Session) {
	t.displayed = s
}

// Editing returns the ID of the event being edited, or 0 when none.
func (t *Tagger) Editing() int64 {
	if t.editingID == nil {
		return 0
	}
	return *t.editingID
}

// BeginEdit marks an event as the one the next Save will update.
func (t *Tagger) BeginEdit(id int64) {
	t.editingID = &id
}

// CancelEdit clears the edit-in-progress marker without saving.
func (t *Tagger) CancelEdit() {
	t.editingID = nil
}

// Save validates the form and either updates the event being edited or
// inserts a new one. Validation failures abort with *ValidationError and
// mutate nothing; storage errors propagate to the caller.
func (t *Tagger) Save(form EventForm) (*SaveResult, error) {
	if err := t.validate(&form); err != nil {
		return nil, err
	}

	record := db.Event{
		Date:             form.Session.Date,
		HomeTeam:         form.Session.HomeTeam,
		AwayTeam:         form.Session.AwayTeam,
		Player:           form.Player,
		Minute:           form.Minute,
		KickoffMinute:    form.Session.KickoffMinute,
		PhaseType:        form.PhaseType,
		MainEvent:        form.MainEvent,
		PossessionOrigin: form.PossessionOrigin,
		PhaseCount:       form.PhaseCount,
		Zone:             form.Zone,
		Outcome:          form.Outcome,
		GainLine:         form.GainLine,
		RuckSpeed:        form.RuckSpeed,
		Penalty:          form.Penalty,
		Comment:          form.Comment,
		VideoURL:         form.VideoURL,
	}

	if form.VideoURL != "" {
		t.lastVideoURL = form.VideoURL
	}

	if t.editingID != nil {
		id := *t.editingID
		if err := db.UpdateEvent(t.store, id, record); err != nil {
			return nil, err
		}
		t.editingID = nil
		record.ID = id
		return &SaveResult{Outcome: RefreshRow, EventID: id, Event: &record}, nil
	}

	// Capture the displayed filter before any side effect: the user may
	// have retyped the session fields since the list was last loaded.
	displayed := t.displayed

	id, err := db.InsertEvent(t.store, record)
	if err != nil {
		return nil, err
	}
	record.ID = id

	if form.Session.Equal(displayed) {
		return &SaveResult{Outcome: Appended, EventID: id, Event: &record}, nil
	}

	// The saved event belongs to a different session than the view shows;
	// reload so the table never mixes sessions.
	events, err := t.Events()
	if err != nil {
		return nil, err
	}
	return &SaveResult{Outcome: Reloaded, EventID: id, Events: events}, nil
}

// validate enforces the save contract: complete session fields and, after
// defaulting, a well-formed video URL.
func (t *Tagger) validate(form *EventForm) error {
	if !form.Session.Complete() {
		return &ValidationError{
			Field:  "session",
			Reason: "date, home team, away team and kickoff minute are required",
		}
	}

	// Default a blank URL from the player's current URL, then from the
	// last-known session URL, in that order.
	if form.VideoURL == "" && t.video != nil {
		form.VideoURL = t.video.CurrentURL()
	}
	if form.VideoURL == "" {
		form.VideoURL = t.lastVideoURL
	}
	if form.VideoURL != "" && !videourl.IsValid(form.VideoURL) {
		return &ValidationError{Field: "video_url", Reason: "not a recognized video link"}
	}
	return nil
}

// Delete removes an event; a pending edit of that event is cancelled.
func (t *Tagger) Delete(id int64) error {
	if t.editingID != nil && *t.editingID == id {
		t.editingID = nil
	}
	return db.DeleteEvent(t.store, id)
}

// Events loads the events of the displayed session, newest first.
func (t *Tagger) Events() ([]db.Event, error) {
	s := t.displayed
	return db.ListEventsBySession(t.store, s.Date, s.HomeTeam, s.AwayTeam, s.KickoffMinute)
}

// SelectedMatch returns the currently selected match ID, or 0 when none.
func (t *Tagger) SelectedMatch() int64 {
	if t.matchID == nil {
		return 0
	}
	return *t.matchID
}

// SelectMatch loads a match and switches the displayed session to its
// quadruple. Returns the match, or nil when the ID does not exist.
func (t *Tagger) SelectMatch(id int64) (*db.Match, error) {
	m, err := db.GetMatch(t.store, id)
	if err != nil || m == nil {
		return m, err
	}
	t.matchID = &id
	t.displayed = Session{
		Date:          m.Date,
		HomeTeam:      m.HomeTeam,
		AwayTeam:      m.AwayTeam,
		KickoffMinute: m.KickoffMinute,
	}
	if m.VideoURL != "" {
		t.lastVideoURL = m.VideoURL
	}
	return m, nil
}

// SaveAsMatch persists the displayed session as a named match and links
// every event sharing the quadruple to it. A blank name defaults to
// "home vs away date". Returns the match ID and the number of events
// linked.
func (t *Tagger) SaveAsMatch(name, videoURL string) (int64, int64, error) {
	s := t.displayed
	if !s.Complete() {
		return 0, 0, &ValidationError{
			Field:  "session",
			Reason: "date, home team, away team and kickoff minute are required",
		}
	}
	if name == "" {
		name = s.Label()
	}
	if videoURL == "" {
		videoURL = t.lastVideoURL
	}
	if videoURL != "" && !videourl.IsValid(videoURL) {
		return 0, 0, &ValidationError{Field: "video_url", Reason: "not a recognized video link"}
	}

	matchID, err := db.InsertMatch(t.store, db.Match{
		Date:          s.Date,
		HomeTeam:      s.HomeTeam,
		AwayTeam:      s.AwayTeam,
		KickoffMinute: s.KickoffMinute,
		VideoURL:      videoURL,
		Name:          name,
	})
	if err != nil {
		return 0, 0, err
	}

	linked, err := db.LinkEventsToMatch(t.store, matchID, s.Date, s.HomeTeam, s.AwayTeam, s.KickoffMinute)
	if err != nil {
		return matchID, 0, err
	}
	t.matchID = &matchID
	return matchID, linked, nil
}

// LinkSession links the displayed session's events to an existing match.
func (t *Tagger) LinkSession(matchID int64) (int64, error) {
	s := t.displayed
	if !s.Complete() {
		return 0, &ValidationError{
			Field:  "session",
			Reason: "date, home team, away team and kickoff minute are required",
		}
	}
	linked, err := db.LinkEventsToMatch(t.store, matchID, s.Date, s.HomeTeam, s.AwayTeam, s.KickoffMinute)
	if err != nil {
		return 0, err
	}
	t.matchID = &matchID
	return linked, nil
}
