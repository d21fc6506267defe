// Package videourl provides an offline syntactic check for YouTube video
// links. False positives for unreachable or removed videos are accepted;
// no network call is ever made.
package videourl

import (
	"regexp"
	"strings"
)

// ytPattern matches full watch URLs and short links. The scheme and www.
// prefix are optional, the host is case-insensitive, and the video ID is
// exactly 11 characters from [A-Za-z0-9_-]. A trailing query or fragment
// is allowed.
var ytPattern = regexp.MustCompile(
	`^(?i:https?://)?(?i:www\.)?(?i:youtube\.com/watch\?v=|youtu\.be/)([A-Za-z0-9_-]{11})([&?#].*)?$`)

// IsValid reports whether the string is plausibly a playable YouTube link.
func IsValid(url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}
	return ytPattern.MatchString(url)
}

// ExtractID returns the 11-character video ID from a valid link, or ""
// when the link doesn't match.
func ExtractID(url string) string {
	m := ytPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return ""
	}
	return m[1]
}
