// Package tui implements the full-screen tagging session: a session
// header, the events table, the huh event form, and best-effort mpv
// playback control.
package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/user/rugby-analysis-cli/db"
	"github.com/user/rugby-analysis-cli/mpv"
	"github.com/user/rugby-analysis-cli/pkg/timeutil"
	"github.com/user/rugby-analysis-cli/session"
	"github.com/user/rugby-analysis-cli/tui/components"
	"github.com/user/rugby-analysis-cli/tui/forms"
	"github.com/user/rugby-analysis-cli/tui/styles"
)

const (
	// tickInterval is the interval for polling mpv status.
	tickInterval = 500 * time.Millisecond
	// resultDisplayDuration is how long transient messages stay visible.
	resultDisplayDuration = 3 * time.Second
	// seekStepSeconds is the h/l seek step.
	seekStepSeconds = 5.0
)

// tickMsg is sent on every tick interval to refresh playback status.
type tickMsg time.Time

// clearMessageMsg clears the transient status message.
type clearMessageMsg struct{}

// mode is the top-level input mode of the screen.
type mode int

const (
	modeBrowse mode = iota
	modeEventForm
	modeMatchForm
	modeConfirmDelete
)

// Model is the Bubbletea model for the tagging screen.
type Model struct {
	tagger *session.Tagger
	client *mpv.Client

	mode     mode
	list     components.EventsListState
	status   components.StatusBarState
	showHelp bool
	quitting bool
	width    int
	height   int

	// event form state (modeEventForm)
	eventForm  *forms.EventForm
	formTarget session.EventForm

	// match form state (modeMatchForm)
	matchForm   *huh.Form
	matchResult forms.MatchFormResult

	// delete confirmation state (modeConfirmDelete)
	confirmForm *huh.Form
	confirmID   int64
	confirmed   bool
}

// NewModel creates the tagging screen over an already-open tagger. The
// mpv client may be nil when no player is attached.
func NewModel(tagger *session.Tagger, client *mpv.Client) *Model {
	m := &Model{tagger: tagger, client: client}
	m.status.SessionLabel = tagger.Displayed().Label()
	m.status.Connected = client != nil && client.IsConnected()
	return m
}

// Init starts the mpv polling ticker.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == modeEventForm || m.mode == modeMatchForm || m.mode == modeConfirmDelete {
			return m.updateForm(msg)
		}
		return m, nil

	case tickMsg:
		m.refreshPlayback()
		return m, tickCmd()

	case clearMessageMsg:
		m.status.Message = ""
		m.status.MessageIsError = false
		return m, nil
	}

	switch m.mode {
	case modeEventForm, modeMatchForm, modeConfirmDelete:
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleBrowseKey(key)
	}
	return m, nil
}

// handleBrowseKey handles normal-mode key input.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "j", "down":
		m.list.MoveDown()
		return m, nil

	case "k", "up":
		m.list.MoveUp()
		return m, nil

	case "r":
		if err := m.reloadEvents(); err != nil {
			return m.showError(err)
		}
		return m.showMessage(fmt.Sprintf("%d events", len(m.list.Events)))

	case "a":
		m.formTarget = session.EventForm{Session: m.tagger.Displayed()}
		m.eventForm = forms.NewEventForm(&m.formTarget)
		m.mode = modeEventForm
		return m, m.eventForm.Form.Init()

	case "e":
		selected := m.list.Selected()
		if selected == nil {
			return m.showError(errors.New("no event selected"))
		}
		m.formTarget = eventToForm(selected)
		m.tagger.BeginEdit(selected.ID)
		m.status.EditingID = selected.ID
		m.eventForm = forms.NewEventForm(&m.formTarget)
		m.mode = modeEventForm
		return m, m.eventForm.Form.Init()

	case "d":
		selected := m.list.Selected()
		if selected == nil {
			return m.showError(errors.New("no event selected"))
		}
		m.confirmID = selected.ID
		m.confirmed = false
		m.confirmForm = forms.NewConfirmDeleteForm(fmt.Sprintf("event %d", selected.ID), &m.confirmed)
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()

	case "m":
		m.matchResult = forms.MatchFormResult{}
		m.matchForm = forms.NewMatchForm(m.tagger.Displayed().Label(), &m.matchResult)
		m.mode = modeMatchForm
		return m, m.matchForm.Init()

	case "enter", "g":
		return m.seekToSelected()

	case " ":
		if m.playerReady() {
			_ = m.client.TogglePause()
		}
		return m, nil

	case "h":
		if m.playerReady() {
			_ = m.client.SeekRelative(-seekStepSeconds)
		}
		return m, nil

	case "l":
		if m.playerReady() {
			_ = m.client.SeekRelative(seekStepSeconds)
		}
		return m, nil
	}

	return m, nil
}

// updateForm routes messages to the active huh form and handles its
// completion or abort.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var form *huh.Form
	switch m.mode {
	case modeEventForm:
		form = m.eventForm.Form
	case modeMatchForm:
		form = m.matchForm
	case modeConfirmDelete:
		form = m.confirmForm
	default:
		return m, nil
	}

	updated, cmd := form.Update(msg)
	f, ok := updated.(*huh.Form)
	if !ok {
		return m, cmd
	}
	switch m.mode {
	case modeEventForm:
		m.eventForm.Form = f
	case modeMatchForm:
		m.matchForm = f
	case modeConfirmDelete:
		m.confirmForm = f
	}

	switch f.State {
	case huh.StateCompleted:
		return m.completeForm()
	case huh.StateAborted:
		return m.abortForm()
	}
	return m, cmd
}

// completeForm commits the active form.
func (m *Model) completeForm() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEventForm:
		m.mode = modeBrowse
		if err := m.eventForm.Apply(); err != nil {
			m.tagger.CancelEdit()
			m.status.EditingID = 0
			return m.showError(err)
		}
		result, err := m.tagger.Save(m.formTarget)
		m.status.EditingID = 0
		if err != nil {
			return m.showError(err)
		}
		return m.applySaveResult(result)

	case modeMatchForm:
		m.mode = modeBrowse
		matchID, linked, err := m.tagger.SaveAsMatch(m.matchResult.Name, m.matchResult.VideoURL)
		if err != nil {
			return m.showError(err)
		}
		m.status.MatchID = matchID
		if err := m.reloadEvents(); err != nil {
			return m.showError(err)
		}
		return m.showMessage(fmt.Sprintf("Match %d saved, %d events linked", matchID, linked))

	case modeConfirmDelete:
		m.mode = modeBrowse
		if !m.confirmed {
			return m, nil
		}
		if err := m.tagger.Delete(m.confirmID); err != nil {
			return m.showError(err)
		}
		m.status.EditingID = m.tagger.Editing()
		if err := m.reloadEvents(); err != nil {
			return m.showError(err)
		}
		return m.showMessage(fmt.Sprintf("Event %d deleted", m.confirmID))
	}

	m.mode = modeBrowse
	return m, nil
}

// abortForm cancels the active form without touching the store.
func (m *Model) abortForm() (tea.Model, tea.Cmd) {
	if m.mode == modeEventForm {
		m.tagger.CancelEdit()
		m.status.EditingID = 0
	}
	m.mode = modeBrowse
	return m, nil
}

// applySaveResult updates the table according to what the save did.
func (m *Model) applySaveResult(result *session.SaveResult) (tea.Model, tea.Cmd) {
	switch result.Outcome {
	case session.RefreshRow:
		for i := range m.list.Events {
			if m.list.Events[i].ID == result.EventID {
				m.list.Events[i] = *result.Event
				break
			}
		}
		return m.showMessage(fmt.Sprintf("Event %d updated", result.EventID))

	case session.Appended:
		// Newest first: the new event goes on top.
		m.list.SetEvents(append([]db.Event{*result.Event}, m.list.Events...))
		return m.showMessage(fmt.Sprintf("Event %d added", result.EventID))

	case session.Reloaded:
		m.list.SetEvents(result.Events)
		m.status.SessionLabel = m.tagger.Displayed().Label()
		return m.showMessage(fmt.Sprintf("Event %d saved to another session", result.EventID))
	}
	return m, nil
}

// seekToSelected jumps mpv to the selected event's timecode.
func (m *Model) seekToSelected() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m.showError(errors.New("no event selected"))
	}
	if !m.playerReady() {
		return m.showError(errors.New("not connected to mpv"))
	}
	ms := timeutil.ParseTimecodeMs(selected.Minute)
	if err := m.client.SeekMs(ms); err != nil {
		return m.showError(err)
	}
	return m.showMessage(fmt.Sprintf("Jumped to event %d at %s", selected.ID, timeutil.FormatMs(ms)))
}

// reloadEvents reloads the displayed session from the store.
func (m *Model) reloadEvents() error {
	events, err := m.tagger.Events()
	if err != nil {
		return err
	}
	m.list.SetEvents(events)
	return nil
}

// refreshPlayback polls mpv for the status bar.
func (m *Model) refreshPlayback() {
	if !m.playerReady() {
		m.status.Connected = false
		return
	}
	m.status.Connected = true
	if paused, err := m.client.GetPaused(); err == nil {
		m.status.Paused = paused
	}
	if pos, err := m.client.GetTimePos(); err == nil {
		m.status.TimePos = pos
	}
	if duration, err := m.client.GetDuration(); err == nil {
		m.status.Duration = duration
	}
}

// playerReady reports whether the mpv client is usable.
func (m *Model) playerReady() bool {
	return m.client != nil && m.client.IsConnected()
}

// showMessage sets a transient status message and schedules its clearing.
func (m *Model) showMessage(text string) (tea.Model, tea.Cmd) {
	m.status.Message = text
	m.status.MessageIsError = false
	return m, clearAfterDelay()
}

// showError sets a transient error message.
func (m *Model) showError(err error) (tea.Model, tea.Cmd) {
	m.status.Message = err.Error()
	m.status.MessageIsError = true
	return m, clearAfterDelay()
}

func clearAfterDelay() tea.Cmd {
	return tea.Tick(resultDisplayDuration, func(t time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// View renders the current state of the model.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	switch m.mode {
	case modeEventForm:
		return m.eventForm.Form.View()
	case modeMatchForm:
		return m.matchForm.View()
	case modeConfirmDelete:
		return m.confirmForm.View()
	}

	header := styles.Header.Render(" " + m.tagger.Displayed().Label())
	hint := styles.SecondaryText.Render("  a add  e edit  d delete  enter seek  m match  ? help  q quit")

	listHeight := m.height - 4
	if listHeight < 6 {
		listHeight = 6
	}
	table := components.EventsList(m.list, m.width, listHeight)
	statusBar := components.StatusBar(m.status, m.width)

	return header + "\n" + hint + "\n" + table + "\n" + statusBar
}

// eventToForm prefills a form from a stored event for editing.
func eventToForm(e *db.Event) session.EventForm {
	return session.EventForm{
		Session: session.Session{
			Date:          e.Date,
			HomeTeam:      e.HomeTeam,
			AwayTeam:      e.AwayTeam,
			KickoffMinute: e.KickoffMinute,
		},
		Player:           e.Player,
		Minute:           e.Minute,
		PhaseType:        e.PhaseType,
		MainEvent:        e.MainEvent,
		PossessionOrigin: e.PossessionOrigin,
		PhaseCount:       e.PhaseCount,
		Zone:             e.Zone,
		Outcome:          e.Outcome,
		GainLine:         e.GainLine,
		RuckSpeed:        e.RuckSpeed,
		Penalty:          e.Penalty,
		Comment:          e.Comment,
		VideoURL:         e.VideoURL,
	}
}

// Run opens the store, attaches mpv when its socket is up, and starts
// the Bubbletea program over the given session.
func Run(sess session.Session) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	client := mpv.NewClient("")
	var video session.VideoSource
	if err := client.Connect(); err == nil {
		video = client
		defer client.Close()
	} else {
		client = nil
	}

	tagger := session.NewTagger(database, sess, video)
	model := NewModel(tagger, client)
	if err := model.reloadEvents(); err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
