package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxPartValue bounds a parsed minutes or seconds figure so the
// millisecond conversion can never overflow into a negative result.
const maxPartValue = math.MaxInt / (61 * 1000)

// ParseTimecodeMs converts a free-text minute field into a millisecond
// offset for video seeking. It is a total function: malformed input maps
// to 0, never to an error or a negative value.
//
// Accepted forms, in priority order:
//   - empty string: 0
//   - "M:SS" (two colon-separated parts): minutes and seconds, either
//     part may be empty and defaults to 0
//   - "M.SS" (two dot-separated parts): read the same way, as minutes
//     and literal seconds ("2.5" is 2m05s, not two and a half minutes)
//   - anything else: parsed as a number of minutes, truncated to a whole
//     minute
func ParseTimecodeMs(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	if strings.Contains(text, ":") {
		if ms, ok := parsePair(text, ":"); ok {
			return ms
		}
		return 0
	}

	if strings.Count(text, ".") == 1 {
		if ms, ok := parsePair(text, "."); ok {
			return ms
		}
		return 0
	}
	// Multi-dot input like "2.5.1" reaches the plain-number path
	// below, which rejects it.

	minutes, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(minutes) || minutes < 0 || minutes > maxPartValue {
		return 0
	}
	return int(minutes) * 60 * 1000
}

// parsePair parses "minutes<sep>seconds" where either part may be empty.
func parsePair(text, sep string) (int, bool) {
	parts := strings.Split(text, sep)
	if len(parts) != 2 {
		return 0, false
	}
	minutes, ok := parsePart(parts[0])
	if !ok {
		return 0, false
	}
	seconds, ok := parsePart(parts[1])
	if !ok {
		return 0, false
	}
	return (minutes*60 + seconds) * 1000, true
}

// parsePart parses one side of a timecode pair. Empty means 0; values
// large enough to overflow the millisecond conversion are rejected.
func parsePart(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxPartValue {
		return 0, false
	}
	return n, true
}

// FormatMs formats a millisecond offset as M:SS for display.
func FormatMs(ms int) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}
