package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/user/rugby-analysis-cli/pkg/videourl"
)

// MatchFormResult holds the data returned by a completed save-as-match form.
type MatchFormResult struct {
	Name     string
	VideoURL string
}

// NewMatchForm creates a huh form for saving the current session as a
// match. The default name is shown as the placeholder; leaving the field
// blank keeps it.
func NewMatchForm(defaultName string, result *MatchFormResult) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Save Session as Match"),

			huh.NewInput().
				Title("Name").
				Description("Blank keeps \""+defaultName+"\"").
				Value(&result.Name),

			huh.NewInput().
				Title("Video URL").
				Description("Optional").
				Value(&result.VideoURL).
				Validate(func(s string) error {
					if s != "" && !videourl.IsValid(s) {
						return fmt.Errorf("not a recognized video link")
					}
					return nil
				}),
		),
	).WithTheme(Theme())
}
