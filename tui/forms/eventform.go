package forms

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/user/rugby-analysis-cli/db"
	"github.com/user/rugby-analysis-cli/session"
)

// EventForm is a multi-step huh wizard bound to a session.EventForm.
// Step 1 carries the session-identifying fields, step 2 the play
// classification, step 3 the optional details.
type EventForm struct {
	Form *huh.Form

	target *session.EventForm
	// phaseCount buffers the numeric field as text for the input widget.
	phaseCount string
}

// NewEventForm builds the wizard. Empty enum fields are seeded with the
// first option, matching what the select widgets will show.
func NewEventForm(target *session.EventForm) *EventForm {
	if target.PhaseType == "" {
		target.PhaseType = db.PhaseTypes[0]
	}
	if target.MainEvent == "" {
		target.MainEvent = db.MainEvents[0]
	}
	if target.PossessionOrigin == "" {
		target.PossessionOrigin = db.PossessionOrigins[0]
	}
	if target.Zone == "" {
		target.Zone = db.Zones[0]
	}
	if target.Outcome == "" {
		target.Outcome = db.Outcomes[0]
	}
	if target.GainLine == "" {
		target.GainLine = db.GainLines[0]
	}

	f := &EventForm{target: target}
	if target.PhaseCount > 0 {
		f.phaseCount = strconv.Itoa(target.PhaseCount)
	}

	f.Form = huh.NewForm(
		// Step 1: session-identifying fields, kept across saves
		huh.NewGroup(
			huh.NewNote().Title("Session").Description("Step 1 of 3: Match Context"),

			huh.NewInput().
				Title("Date").
				Description("Required - dd/mm/yyyy").
				Value(&target.Session.Date).
				Validate(required("date")),

			huh.NewInput().
				Title("Home Team").
				Description("Required").
				Value(&target.Session.HomeTeam).
				Validate(required("home team")),

			huh.NewInput().
				Title("Away Team").
				Description("Required").
				Value(&target.Session.AwayTeam).
				Validate(required("away team")),

			huh.NewInput().
				Title("Kickoff Minute").
				Description("Required - video timecode of kickoff, e.g. 2:30").
				Value(&target.Session.KickoffMinute).
				Validate(required("kickoff minute")),
		),

		// Step 2: play classification
		huh.NewGroup(
			huh.NewNote().Title("Event").Description("Step 2 of 3: Classification"),

			huh.NewInput().
				Title("Minute").
				Description("Video timecode, e.g. 1:23 or 3").
				Value(&target.Minute),

			huh.NewSelect[string]().
				Title("Phase Type").
				Options(stringOptions(db.PhaseTypes)...).
				Value(&target.PhaseType),

			huh.NewSelect[string]().
				Title("Main Event").
				Options(stringOptions(db.MainEvents)...).
				Value(&target.MainEvent),

			huh.NewSelect[string]().
				Title("Possession Origin").
				Options(stringOptions(db.PossessionOrigins)...).
				Value(&target.PossessionOrigin),

			huh.NewInput().
				Title("Phase Count").
				Description("Number of phases, 0 or more").
				Value(&f.phaseCount).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("must be a non-negative number")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Zone").
				Options(stringOptions(db.Zones)...).
				Value(&target.Zone),

			huh.NewSelect[string]().
				Title("Outcome").
				Options(stringOptions(db.Outcomes)...).
				Value(&target.Outcome),

			huh.NewSelect[string]().
				Title("Gain Line").
				Options(stringOptions(db.GainLines)...).
				Value(&target.GainLine),
		),

		// Step 3: optional details
		huh.NewGroup(
			huh.NewNote().Title("Details").Description("Step 3 of 3: Optional"),

			huh.NewInput().
				Title("Player").
				Description("Optional").
				Value(&target.Player),

			huh.NewSelect[string]().
				Title("Ruck Speed").
				Options(labelledOptions(db.RuckSpeeds)...).
				Value(&target.RuckSpeed),

			huh.NewSelect[string]().
				Title("Penalty").
				Options(labelledOptions(db.Penalties)...).
				Value(&target.Penalty),

			huh.NewInput().
				Title("Comment").
				Description("Optional").
				Value(&target.Comment),

			huh.NewInput().
				Title("Video URL").
				Description("Optional - defaults to the player's current URL").
				Value(&target.VideoURL),
		),
	).WithTheme(Theme())

	return f
}

// Run runs the form to completion and applies the buffered fields.
func (f *EventForm) Run() error {
	if err := f.Form.Run(); err != nil {
		return err
	}
	return f.Apply()
}

// Apply commits buffered text fields into the bound EventForm. Call it
// after the embedded huh form reports completion.
func (f *EventForm) Apply() error {
	if f.phaseCount == "" {
		f.target.PhaseCount = 0
		return nil
	}
	n, err := strconv.Atoi(f.phaseCount)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid phase count: %q", f.phaseCount)
	}
	f.target.PhaseCount = n
	return nil
}

// required returns a validator rejecting empty input.
func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// stringOptions converts a value list into huh options.
func stringOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

// labelledOptions is stringOptions but renders the empty value as "None".
func labelledOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		label := v
		if label == "" {
			label = "None"
		}
		opts = append(opts, huh.NewOption(label, v))
	}
	return opts
}
