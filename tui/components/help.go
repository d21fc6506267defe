// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/rugby-analysis-cli/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings, centered
// in the given terminal dimensions.
func HelpOverlay(width, height int) string {
	groups := []struct {
		title    string
		bindings []struct {
			key  string
			desc string
		}
	}{
		{
			title: "Events",
			bindings: []struct {
				key  string
				desc string
			}{
				{"a", "Add a new event"},
				{"e", "Edit the selected event"},
				{"d", "Delete the selected event"},
				{"r", "Reload the events table"},
			},
		},
		{
			title: "Navigation",
			bindings: []struct {
				key  string
				desc string
			}{
				{"j / down", "Select next row"},
				{"k / up", "Select previous row"},
				{"Enter / g", "Seek video to the selected event"},
			},
		},
		{
			title: "Playback",
			bindings: []struct {
				key  string
				desc string
			}{
				{"Space", "Toggle play/pause"},
				{"h", "Seek back 5 seconds"},
				{"l", "Seek forward 5 seconds"},
			},
		},
		{
			title: "Match",
			bindings: []struct {
				key  string
				desc string
			}{
				{"m", "Save this session as a match"},
			},
		},
		{
			title: "General",
			bindings: []struct {
				key  string
				desc string
			}{
				{"?", "Show/hide this help"},
				{"q", "Quit"},
			},
		},
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true).
		Padding(0, 1)

	groupHeaderStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cream).
		Bold(true).
		Width(12)

	var lines []string
	lines = append(lines, titleStyle.Render("Keybindings"))
	lines = append(lines, "")

	for _, group := range groups {
		lines = append(lines, groupHeaderStyle.Render(group.title))
		for _, binding := range group.bindings {
			lines = append(lines, "  "+keyStyle.Render(binding.key)+styles.SecondaryText.Render(binding.desc))
		}
	}

	lines = append(lines, "")
	lines = append(lines, styles.SecondaryText.Italic(true).Render("Press any key to close"))

	content := strings.Join(lines, "\n")

	contentLines := strings.Split(content, "\n")
	contentWidth := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > contentWidth {
			contentWidth = w
		}
	}

	marginLeft := (width - contentWidth - 6) / 2
	if marginLeft < 0 {
		marginLeft = 0
	}
	marginTop := (height - len(contentLines) - 4) / 2
	if marginTop < 0 {
		marginTop = 0
	}

	panel := lipgloss.NewStyle().
		Background(styles.Shadow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Pitch).
		Padding(1, 2).
		Render(content)

	return lipgloss.NewStyle().
		MarginLeft(marginLeft).
		MarginTop(marginTop).
		Render(panel)
}
