// Package forms provides huh-based form components for the TUI and CLI.
package forms

import (
	"github.com/charmbracelet/huh"
)

// NewConfirmDeleteForm creates a huh confirm form asking the user whether
// to delete the described record. The result pointer is bound to the
// confirm field value.
func NewConfirmDeleteForm(what string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete "+what+"?").
				Description("This cannot be undone.").
				Affirmative("Yes, delete").
				Negative("No, go back").
				Value(confirmed),
		),
	).WithTheme(Theme())
}
