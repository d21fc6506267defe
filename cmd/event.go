package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/rugby-analysis-cli/clip"
	"github.com/user/rugby-analysis-cli/db"
	"github.com/user/rugby-analysis-cli/mpv"
	"github.com/user/rugby-analysis-cli/pkg/export"
	"github.com/user/rugby-analysis-cli/pkg/timeutil"
	"github.com/user/rugby-analysis-cli/session"
	"github.com/user/rugby-analysis-cli/tui/forms"
)

// addSessionFlags registers the four session-identifying flags.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", time.Now().Format("02/01/2006"), "Match date (dd/mm/yyyy)")
	cmd.Flags().String("home", "", "Home team")
	cmd.Flags().String("away", "", "Away team")
	cmd.Flags().String("kickoff", "", "Kickoff minute in the video (e.g. 2:30)")
}

// sessionFromFlags builds the session quadruple from the command's flags.
func sessionFromFlags(cmd *cobra.Command) (session.Session, error) {
	date, _ := cmd.Flags().GetString("date")
	home, _ := cmd.Flags().GetString("home")
	away, _ := cmd.Flags().GetString("away")
	kickoff, _ := cmd.Flags().GetString("kickoff")
	return session.Session{
		Date:          date,
		HomeTeam:      home,
		AwayTeam:      away,
		KickoffMinute: kickoff,
	}, nil
}

// newTagger builds a Tagger, attaching mpv as the video source only when
// it is actually reachable.
func newTagger(database *sql.DB, sess session.Session) (*session.Tagger, *mpv.Client) {
	client := mpv.NewClient("")
	if err := client.Connect(); err != nil {
		return session.NewTagger(database, sess, nil), nil
	}
	return session.NewTagger(database, sess, client), client
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event ID: %s", arg)
	}
	return id, nil
}

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage tagged match events",
	Long:  `Add, list, edit and delete tagged events for a match session.`,
}

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Tag a new event in the current session",
	Long: `Open the event form and save a new event against the session given by
the --date/--home/--away/--kickoff flags. A blank video URL defaults to
the URL loaded in mpv, then to the session's last-known URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		tagger, player := newTagger(database, sess)
		if player != nil {
			defer player.Close()
		}

		form := session.EventForm{Session: sess}
		if err := forms.NewEventForm(&form).Run(); err != nil {
			return fmt.Errorf("event form: %w", err)
		}

		result, err := tagger.Save(form)
		if err != nil {
			return err
		}

		fmt.Printf("Event %d saved for %s\n", result.EventID, form.Session.Label())
		return nil
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the events of a session",
	Long:  `Display all events sharing the session given by the session flags, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		events, err := db.ListEventsBySession(database, sess.Date, sess.HomeTeam, sess.AwayTeam, sess.KickoffMinute)
		if err != nil {
			return err
		}

		printEvents(events)
		return nil
	},
}

var eventEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing event",
	Long:  `Open the event form pre-filled with the event's current values and save the changes. The session-identifying date and teams cannot be changed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		existing, err := db.GetEvent(database, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sess := session.Session{
			Date:          existing.Date,
			HomeTeam:      existing.HomeTeam,
			AwayTeam:      existing.AwayTeam,
			KickoffMinute: existing.KickoffMinute,
		}
		tagger, player := newTagger(database, sess)
		if player != nil {
			defer player.Close()
		}

		form := session.EventForm{
			Session:          sess,
			Player:           existing.Player,
			Minute:           existing.Minute,
			PhaseType:        existing.PhaseType,
			MainEvent:        existing.MainEvent,
			PossessionOrigin: existing.PossessionOrigin,
			PhaseCount:       existing.PhaseCount,
			Zone:             existing.Zone,
			Outcome:          existing.Outcome,
			GainLine:         existing.GainLine,
			RuckSpeed:        existing.RuckSpeed,
			Penalty:          existing.Penalty,
			Comment:          existing.Comment,
			VideoURL:         existing.VideoURL,
		}
		if err := forms.NewEventForm(&form).Run(); err != nil {
			return fmt.Errorf("event form: %w", err)
		}

		tagger.BeginEdit(id)
		if _, err := tagger.Save(form); err != nil {
			return err
		}

		fmt.Printf("Event %d updated.\n", id)
		return nil
	},
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event",
	Long:  `Delete an event by ID. Prompts for confirmation unless --force is used.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		existing, err := db.GetEvent(database, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Printf("Event %d: %s %s, minute %s (%s vs %s)\n",
			existing.ID, existing.PhaseType, existing.MainEvent,
			existing.Minute, existing.HomeTeam, existing.AwayTeam)

		if !force {
			fmt.Print("Are you sure you want to delete this event? [y/N] ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		if err := db.DeleteEvent(database, id); err != nil {
			return err
		}

		fmt.Printf("Event %d deleted.\n", id)
		return nil
	},
}

var eventGotoCmd = &cobra.Command{
	Use:   "goto <id>",
	Short: "Jump mpv to an event's timecode",
	Long:  `Seek the running mpv instance to the millisecond offset parsed from the event's minute field.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		event, err := db.GetEvent(database, id)
		if err != nil {
			return err
		}
		if event == nil {
			return fmt.Errorf("event %d not found", id)
		}

		client := mpv.NewClient("")
		if err := client.Connect(); err != nil {
			return fmt.Errorf("failed to connect to mpv: %w\n(Is mpv running with a video open?)", err)
		}
		defer client.Close()

		ms := timeutil.ParseTimecodeMs(event.Minute)
		if err := client.SeekMs(ms); err != nil {
			return fmt.Errorf("failed to seek: %w", err)
		}

		fmt.Printf("Jumped to event %d at %s\n", id, timeutil.FormatMs(ms))
		return nil
	},
}

var eventClipCmd = &cobra.Command{
	Use:   "clip <id>",
	Short: "Cut a clip around an event's timecode",
	Long: `Cut a short clip around the event's timecode from a local copy of the
match video using ffmpeg stream copy. The clip covers 5 seconds before and
15 seconds after the event.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		videoPath, _ := cmd.Flags().GetString("video")
		if videoPath == "" {
			return fmt.Errorf("--video is required: path to a local copy of the match video")
		}
		if _, err := os.Stat(videoPath); err != nil {
			return fmt.Errorf("failed to access video file: %w", err)
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		event, err := db.GetEvent(database, id)
		if err != nil {
			return err
		}
		if event == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sess := session.Session{
			Date:          event.Date,
			HomeTeam:      event.HomeTeam,
			AwayTeam:      event.AwayTeam,
			KickoffMinute: event.KickoffMinute,
		}

		ms := timeutil.ParseTimecodeMs(event.Minute)
		start, duration := clip.Window(ms)
		outputPath := clip.OutputPath(videoPath, sess.Label(), event.MainEvent, event.Outcome, event.ID, ms)

		fmt.Printf("Cutting clip for event %d at %s...\n", id, timeutil.FormatMs(ms))
		if err := clip.Extract(videoPath, start, duration, outputPath); err != nil {
			return err
		}

		fmt.Printf("Clip written to %s\n", outputPath)
		return nil
	},
}

var eventExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the events of a session to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}
		outPath, _ := cmd.Flags().GetString("output")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		events, err := db.ListEventsBySession(database, sess.Date, sess.HomeTeam, sess.AwayTeam, sess.KickoffMinute)
		if err != nil {
			return err
		}

		if outPath == "" {
			return export.WriteCSV(os.Stdout, events)
		}
		if err := export.WriteFile(outPath, events); err != nil {
			return err
		}
		fmt.Printf("%d event(s) exported to %s\n", len(events), outPath)
		return nil
	},
}

var eventStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show event counts for a session",
	Long:  `Display event counts grouped by phase type and outcome for the session given by the session flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		stats, err := db.SessionStats(database, sess.Date, sess.HomeTeam, sess.AwayTeam, sess.KickoffMinute)
		if err != nil {
			return err
		}

		printStats(stats)
		return nil
	},
}

// printEvents renders events as a table, newest first.
func printEvents(events []db.Event) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMinute\tPhase\tEvent\tOrigin\tZone\tOutcome\tPlayer\tComment")
	fmt.Fprintln(w, "--\t------\t-----\t-----\t------\t----\t-------\t------\t-------")

	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Minute, e.PhaseType, e.MainEvent, e.PossessionOrigin,
			e.Zone, e.Outcome, e.Player, e.Comment)
	}
	w.Flush()

	if len(events) == 0 {
		fmt.Println("\nNo events found for this session.")
	} else {
		fmt.Printf("\n%d event(s) found.\n", len(events))
	}
}

// printStats renders aggregate rows as a table.
func printStats(stats []db.StatRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Phase\tOutcome\tCount")
	fmt.Fprintln(w, "-----\t-------\t-----")
	total := 0
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%s\t%d\n", s.PhaseType, s.Outcome, s.Count)
		total += s.Count
	}
	w.Flush()
	fmt.Printf("\n%d event(s) total.\n", total)
}

func init() {
	addSessionFlags(eventAddCmd)
	addSessionFlags(eventListCmd)
	addSessionFlags(eventExportCmd)
	addSessionFlags(eventStatsCmd)

	eventDeleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
	eventClipCmd.Flags().String("video", "", "Path to a local copy of the match video")
	eventExportCmd.Flags().StringP("output", "o", "", "Output CSV path (default stdout)")

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventEditCmd)
	eventCmd.AddCommand(eventDeleteCmd)
	eventCmd.AddCommand(eventGotoCmd)
	eventCmd.AddCommand(eventClipCmd)
	eventCmd.AddCommand(eventExportCmd)
	eventCmd.AddCommand(eventStatsCmd)
	rootCmd.AddCommand(eventCmd)
}
