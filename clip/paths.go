package clip

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeChars matches characters not safe for filenames.
var unsafeChars = regexp.MustCompile(`[/\\:*?<>|\s]+`)

// slug lowercases a label and replaces unsafe characters with underscores.
func slug(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "unspecified"
	}
	return unsafeChars.ReplaceAllString(s, "_")
}

// OutputPath computes where a clip cut from videoPath lands. Clips are
// grouped by session label and main event:
// <videoDir>/clips/<session>/<main_event>/<MMSS>-<main_event>-<outcome>-<id>.mp4
func OutputPath(videoPath, sessionLabel, mainEvent, outcome string, eventID int64, startMs int) string {
	totalSecs := startMs / 1000
	stamp := fmt.Sprintf("%02d%02d", totalSecs/60, totalSecs%60)

	filename := fmt.Sprintf("%s-%s-%s-%d.mp4", stamp, slug(mainEvent), slug(outcome), eventID)
	return filepath.Join(filepath.Dir(videoPath), "clips", slug(sessionLabel), slug(mainEvent), filename)
}
