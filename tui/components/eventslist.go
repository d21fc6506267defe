// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/rugby-analysis-cli/db"
	"github.com/user/rugby-analysis-cli/tui/styles"
)

// EventsListState holds the state for the events table component.
type EventsListState struct {
	// Events is the displayed session's events, newest first
	Events []db.Event
	// SelectedIndex is the currently selected row index
	SelectedIndex int
	// ScrollOffset is the scroll position
	ScrollOffset int
}

// EventsList renders the events table. The table scrolls to keep the
// selected row visible within the given height.
func EventsList(state EventsListState, width, height int) string {
	rows := height - 1 // one line for the header
	if rows < 3 {
		rows = 3
	}

	// Column widths (ID: 5, Min: 7, Phase: 11, Event: 10, Zone: 5, Outcome: 9, Player: rest)
	idWidth := 5
	minWidth := 7
	phaseWidth := 11
	eventWidth := 10
	zoneWidth := 5
	outcomeWidth := 9
	playerWidth := width - idWidth - minWidth - phaseWidth - eventWidth - zoneWidth - outcomeWidth - 8
	if playerWidth < 8 {
		playerWidth = 8
	}

	header := fmt.Sprintf(" %-*s %-*s %-*s %-*s %-*s %-*s %-*s",
		idWidth, "ID",
		minWidth, "Min",
		phaseWidth, "Phase",
		eventWidth, "Event",
		zoneWidth, "Zone",
		outcomeWidth, "Outcome",
		playerWidth, "Player")

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true).
		Underline(true)

	var lines []string
	lines = append(lines, headerStyle.Render(header))

	if len(state.Events) == 0 {
		empty := styles.SecondaryText.Italic(true).
			Render(" No events in this session yet. Press 'a' to add one.")
		lines = append(lines, empty)
		for i := 1; i < rows; i++ {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}

	// Keep the selected row within the visible window
	if state.SelectedIndex < state.ScrollOffset {
		state.ScrollOffset = state.SelectedIndex
	} else if state.SelectedIndex >= state.ScrollOffset+rows {
		state.ScrollOffset = state.SelectedIndex - rows + 1
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}
	maxOffset := len(state.Events) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if state.ScrollOffset > maxOffset {
		state.ScrollOffset = maxOffset
	}

	for row := 0; row < rows; row++ {
		i := state.ScrollOffset + row
		if i >= len(state.Events) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, renderEventRow(state.Events[i], i == state.SelectedIndex,
			idWidth, minWidth, phaseWidth, eventWidth, zoneWidth, outcomeWidth, playerWidth, width))
	}

	return strings.Join(lines, "\n")
}

// renderEventRow renders a single table row.
func renderEventRow(e db.Event, selected bool, idWidth, minWidth, phaseWidth, eventWidth, zoneWidth, outcomeWidth, playerWidth, fullWidth int) string {
	idStr := fmt.Sprintf("%d", e.ID)
	if e.MatchID != nil {
		idStr += "*" // linked to a match
	}

	content := fmt.Sprintf(" %-*s %-*s %-*s %-*s %-*s %-*s %-*s",
		idWidth, truncate(idStr, idWidth),
		minWidth, truncate(e.Minute, minWidth),
		phaseWidth, truncate(e.PhaseType, phaseWidth),
		eventWidth, truncate(e.MainEvent, eventWidth),
		zoneWidth, truncate(e.Zone, zoneWidth),
		outcomeWidth, truncate(e.Outcome, outcomeWidth),
		playerWidth, truncate(e.Player, playerWidth))

	if selected {
		return styles.Highlight.Width(fullWidth).Render(content)
	}
	return styles.PrimaryText.Width(fullWidth).Render(content)
}

// truncate shortens a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// MoveUp moves the selection up in the list.
func (s *EventsListState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection down in the list.
func (s *EventsListState) MoveDown() {
	if s.SelectedIndex < len(s.Events)-1 {
		s.SelectedIndex++
	}
}

// Selected returns the currently selected event, or nil if the list is empty.
func (s *EventsListState) Selected() *db.Event {
	if len(s.Events) == 0 || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Events) {
		return nil
	}
	return &s.Events[s.SelectedIndex]
}

// SetEvents replaces the list and clamps the selection.
func (s *EventsListState) SetEvents(events []db.Event) {
	s.Events = events
	if s.SelectedIndex >= len(events) {
		s.SelectedIndex = len(events) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}
