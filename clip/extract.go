// Package clip cuts short clips around tagged events from a local copy of
// the match video, using ffmpeg stream copy.
package clip

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/user/rugby-analysis-cli/deps"
)

const (
	// LeadSeconds is how far before the event timecode a clip starts.
	LeadSeconds = 5.0
	// TailSeconds is how far after the event timecode a clip ends.
	TailSeconds = 15.0
)

// Window returns the clip start and duration in seconds for an event at
// the given millisecond offset. The start is clamped to 0 so early
// events keep their lead inside the video.
func Window(eventMs int) (start, duration float64) {
	center := float64(eventMs) / 1000.0
	start = center - LeadSeconds
	if start < 0 {
		start = 0
	}
	duration = (center + TailSeconds) - start
	return start, duration
}

// Extract cuts [start, start+duration] from videoPath into outputPath
// using ffmpeg stream copy, creating the output directory first.
func Extract(videoPath string, start, duration float64, outputPath string) error {
	if err := deps.CheckFfmpeg(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%.3f", start),
		"-i", videoPath,
		"-t", fmt.Sprintf("%.3f", duration),
		"-c", "copy",
		outputPath,
	}

	cmd := exec.Command("ffmpeg", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, string(output))
	}

	return nil
}
