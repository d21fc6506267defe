package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/rugby-analysis-cli/db"
	"github.com/user/rugby-analysis-cli/mpv"
	"github.com/user/rugby-analysis-cli/pkg/export"
	"github.com/user/rugby-analysis-cli/session"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Manage saved matches",
	Long:  `Save sessions as named matches, link events to them, and browse their data.`,
}

var matchSaveCmd = &cobra.Command{
	Use:     "save",
	Aliases: []string{"create"},
	Short:   "Save the current session as a match",
	Long: `Create a match from the session given by the session flags and link every
event sharing that session to it. A blank --name defaults to "home vs away date".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		url, _ := cmd.Flags().GetString("url")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		tagger, player := newTagger(database, sess)
		if player != nil {
			defer player.Close()
		}

		matchID, linked, err := tagger.SaveAsMatch(name, url)
		if err != nil {
			return err
		}

		fmt.Printf("Match %d saved; %d event(s) linked.\n", matchID, linked)
		return nil
	},
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		matches, err := db.ListMatches(database)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tName\tDate\tHome\tAway")
		fmt.Fprintln(w, "--\t----\t----\t----\t----")
		for _, m := range matches {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Date, m.HomeTeam, m.AwayTeam)
		}
		w.Flush()

		if len(matches) == 0 {
			fmt.Println("\nNo matches saved.")
		} else {
			fmt.Printf("\n%d match(es) found.\n", len(matches))
		}
		return nil
	},
}

var matchShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a match's details",
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

		m, err := db.GetMatch(database, id)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("match %d not found", id)
		}

		fmt.Printf("Match %d: %s\n", m.ID, m.Name)
		fmt.Printf("  Date:     %s\n", m.Date)
		fmt.Printf("  Teams:    %s vs %s\n", m.HomeTeam, m.AwayTeam)
		fmt.Printf("  Kickoff:  %s\n", m.KickoffMinute)
		if m.VideoURL != "" {
			fmt.Printf("  Video:    %s\n", m.VideoURL)
		}

		events, err := db.ListEventsByMatch(database, id)
		if err != nil {
			return err
		}
		fmt.Printf("  Events:   %d linked\n", len(events))
		return nil
	},
}

var matchEventsCmd = &cobra.Command{
	Use:   "events <id>",
	Short: "List the events linked to a match",
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

		events, err := db.ListEventsByMatch(database, id)
		if err != nil {
			return err
		}

		printEvents(events)
		return nil
	},
}

var matchLinkCmd = &cobra.Command{
	Use:   "link <id>",
	Short: "Link a session's events to a match",
	Long: `Set the match reference on every event sharing the session given by the
session flags. Re-running with the same arguments is harmless.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		sess, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		m, err := db.GetMatch(database, id)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("match %d not found", id)
		}

		tagger := session.NewTagger(database, sess, nil)
		linked, err := tagger.LinkSession(id)
		if err != nil {
			return err
		}

		fmt.Printf("%d event(s) linked to match %d (%s).\n", linked, id, m.Name)
		return nil
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a match",
	Long:  `Delete a match by ID. Its events are unlinked, never deleted. Prompts for confirmation unless --force is used.`,
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

		m, err := db.GetMatch(database, id)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("match %d not found", id)
		}

		fmt.Printf("Match %d: %s\n", m.ID, m.Name)

		if !force {
			fmt.Print("Delete this match? Its events will be kept, unlinked. [y/N] ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		deleted, err := db.DeleteMatch(database, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			fmt.Printf("Match %d was already gone.\n", id)
			return nil
		}

		fmt.Printf("Match %d deleted; its events were unlinked.\n", id)
		return nil
	},
}

var matchExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a match's events to CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		outPath, _ := cmd.Flags().GetString("output")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		events, err := db.ListEventsByMatch(database, id)
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

var matchStatsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show event counts for a match",
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

		stats, err := db.MatchStats(database, id)
		if err != nil {
			return err
		}

		printStats(stats)
		return nil
	},
}

var matchWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Open a match's video in mpv",
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

		m, err := db.GetMatch(database, id)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("match %d not found", id)
		}
		if m.VideoURL == "" {
			return fmt.Errorf("match %d has no video URL", id)
		}

		fmt.Printf("Opening %s: %s\n", m.Name, m.VideoURL)
		process, err := mpv.Launch(m.VideoURL)
		if err != nil {
			return fmt.Errorf("failed to launch mpv: %w", err)
		}
		return process.Wait()
	},
}

func init() {
	addSessionFlags(matchSaveCmd)
	addSessionFlags(matchLinkCmd)
	matchSaveCmd.Flags().String("name", "", "Match name (default \"home vs away date\")")
	matchSaveCmd.Flags().String("url", "", "Match video URL")
	matchDeleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
	matchExportCmd.Flags().StringP("output", "o", "", "Output CSV path (default stdout)")

	matchCmd.AddCommand(matchSaveCmd)
	matchCmd.AddCommand(matchListCmd)
	matchCmd.AddCommand(matchShowCmd)
	matchCmd.AddCommand(matchEventsCmd)
	matchCmd.AddCommand(matchLinkCmd)
	matchCmd.AddCommand(matchDeleteCmd)
	matchCmd.AddCommand(matchExportCmd)
	matchCmd.AddCommand(matchStatsCmd)
	matchCmd.AddCommand(matchWatchCmd)
	rootCmd.AddCommand(matchCmd)
}
