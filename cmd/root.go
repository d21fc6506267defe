package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/rugby-analysis-cli/deps"
	"github.com/user/rugby-analysis-cli/mpv"
	"github.com/user/rugby-analysis-cli/pkg/videourl"
	"github.com/user/rugby-analysis-cli/tui"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "rugby-analysis-cli",
	Short: "A CLI tool for rugby match data entry and analysis",
	Long: `rugby-analysis-cli is a CLI tool for rugby coaches and analysts
to tag in-game events (phase, zone, outcome, ...) against a match session
stored in SQLite, with optional playback of the linked match video in mpv.

Features:
  - Tag events against a session (date, teams, kickoff minute)
  - Group sessions into named matches and link their events
  - Jump mpv to the timecode of a tagged event
  - Export events to CSV and cut clips with ffmpeg`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rugby-analysis-cli version %s\n", Version)
	},
}

var openCmd = &cobra.Command{
	Use:   "open <video-url-or-file>",
	Short: "Open match footage for analysis",
	Long: `Open a video in mpv for analysis. The argument may be a local file or a
YouTube link (streamed through yt-dlp). The video player launches with an
IPC socket so events can seek it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		if videourl.IsValid(target) {
			if err := deps.CheckYtDlp(); err != nil {
				return err
			}
		} else {
			// Not a video link, so it must be a local file.
			absPath, err := filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}
			info, err := os.Stat(absPath)
			if os.IsNotExist(err) {
				return fmt.Errorf("video not found and not a recognized video link: %s", target)
			}
			if err != nil {
				return fmt.Errorf("failed to access video file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("path is a directory, not a video file: %s", absPath)
			}
			target = absPath
		}

		fmt.Printf("Opening: %s\n", target)
		process, err := mpv.Launch(target)
		if err != nil {
			return fmt.Errorf("failed to launch mpv: %w", err)
		}

		// Wait briefly for the IPC socket to come up
		client := mpv.NewClient("")
		var connectErr error
		for i := 0; i < 50; i++ { // up to 5 seconds
			time.Sleep(100 * time.Millisecond)
			connectErr = client.Connect()
			if connectErr == nil {
				break
			}
		}

		if connectErr != nil {
			if process.Process != nil {
				process.Process.Kill()
			}
			return fmt.Errorf("failed to connect to mpv: %w", connectErr)
		}
		defer client.Close()

		fmt.Println("Video session started. Use 'rugby-analysis-cli event add' or the TUI to tag events.")

		return process.Wait()
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (mpv, ffmpeg, yt-dlp) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		checks := []struct {
			name  string
			check func() error
			url   string
		}{
			{"mpv", deps.CheckMpv, deps.MpvInstallURL},
			{"ffmpeg", deps.CheckFfmpeg, deps.FfmpegInstallURL},
			{"yt-dlp", deps.CheckYtDlp, deps.YtDlpInstallURL},
		}

		for _, c := range checks {
			if err := c.check(); err != nil {
				fmt.Printf("✗ %s: NOT FOUND\n", c.name)
				fmt.Printf("  Install from: %s\n", c.url)
				allGood = false
			} else {
				fmt.Printf("✓ %s: OK\n", c.name)
			}
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen tagging session",
	Long:  `Start the interactive tagging screen: event form, session table and match tools in one view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessionFromFlags(cmd)
		if err != nil {
			return err
		}
		return tui.Run(sess)
	},
}

func init() {
	addSessionFlags(tuiCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(tuiCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
