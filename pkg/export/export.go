// Package export writes tagged events as CSV for analysis in a
// spreadsheet.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/user/rugby-analysis-cli/db"
)

// header is the fixed CSV column order.
var header = []string{
	"id", "date", "home_team", "away_team", "player", "minute",
	"kickoff_minute", "phase_type", "main_event", "possession_origin",
	"phase_count", "zone", "outcome", "gain_line", "ruck_speed",
	"penalty", "comment", "video_url",
}

// WriteCSV writes the events to w with a fixed header row.
func WriteCSV(w io.Writer, events []db.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range events {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date, e.HomeTeam, e.AwayTeam, e.Player, e.Minute,
			e.KickoffMinute, e.PhaseType, e.MainEvent, e.PossessionOrigin,
			strconv.Itoa(e.PhaseCount), e.Zone, e.Outcome, e.GainLine,
			e.RuckSpeed, e.Penalty, e.Comment, e.VideoURL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the events as CSV to the given path, creating parent
// directories as needed.
func WriteFile(path string, events []db.Event) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, events); err != nil {
		return err
	}
	return f.Close()
}
