package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/rugby-analysis-cli/tui/styles"
)

// Theme returns a custom huh theme that matches the TUI color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Pitch).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		SetString("▸ ").
		Foreground(styles.Sky)

	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Cream)

	t.Focused.NextIndicator = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Focused.PrevIndicator = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Moss)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Cream)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Pitch).
		Foreground(styles.Cream).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Moss).
		Foreground(styles.Straw).
		Padding(0, 1)

	t.Focused.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(styles.Moss)

	t.Blurred.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Blurred.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Blurred.SelectSelector = lipgloss.NewStyle().
		SetString("  ")

	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Blurred.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Blurred.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Moss)

	t.Blurred.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Moss)

	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Moss)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Blurred.FocusedButton = lipgloss.NewStyle().
		Background(styles.Moss).
		Foreground(styles.Straw).
		Padding(0, 1)

	t.Blurred.BlurredButton = lipgloss.NewStyle().
		Background(styles.Shadow).
		Foreground(styles.Moss).
		Padding(0, 1)

	t.Blurred.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Straw)

	t.Blurred.Next = t.Blurred.FocusedButton

	return t
}
