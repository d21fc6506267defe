// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/rugby-analysis-cli/pkg/timeutil"
	"github.com/user/rugby-analysis-cli/tui/styles"
)

// StatusBarState holds what the bottom status bar displays.
type StatusBarState struct {
	// SessionLabel is "home vs away date" of the displayed session
	SessionLabel string
	// EditingID is the event id being edited, 0 when none
	EditingID int64
	// MatchID is the selected match id, 0 when none
	MatchID int64
	// Connected indicates whether the mpv socket is reachable
	Connected bool
	// Paused is mpv's pause state (meaningful when connected)
	Paused bool
	// TimePos is the current playback position in seconds
	TimePos float64
	// Duration is the total video duration in seconds
	Duration float64
	// Message is a transient result or error line
	Message string
	// MessageIsError styles the message as an error
	MessageIsError bool
}

// StatusBar renders the single-line status bar: session on the left,
// playback position and mode markers on the right.
func StatusBar(state StatusBarState, width int) string {
	left := " " + state.SessionLabel
	if state.MatchID != 0 {
		left += fmt.Sprintf("  [match %d]", state.MatchID)
	}
	if state.EditingID != 0 {
		left += fmt.Sprintf("  [editing %d]", state.EditingID)
	}

	var right string
	if state.Connected {
		playIcon := "▶"
		if state.Paused {
			playIcon = "⏸"
		}
		right = fmt.Sprintf("%s %s / %s ", playIcon, timeutil.FormatTime(state.TimePos), timeutil.FormatTime(state.Duration))
	} else {
		right = "no player "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	middle := ""
	for i := 0; i < padding; i++ {
		middle += " "
	}

	barStyle := lipgloss.NewStyle().
		Background(styles.Shadow).
		Foreground(styles.Cream).
		Bold(true).
		Width(width)

	bar := barStyle.Render(left + middle + right)

	if state.Message == "" {
		return bar
	}
	msgStyle := styles.Success
	if state.MessageIsError {
		msgStyle = styles.Warning
	}
	return bar + "\n" + msgStyle.Render(" "+state.Message)
}
