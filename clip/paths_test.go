package clip

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	got := OutputPath("/videos/match.mp4", "A vs B 01/01/2025", "Ruck", "Positive", 7, 83000)
	want := filepath.Join("/videos", "clips", "a_vs_b_01_01_2025", "ruck", "0123-ruck-positive-7.mp4")
	assert.Equal(t, want, got)
}

func TestOutputPathBlankLabels(t *testing.T) {
	got := OutputPath("/videos/match.mp4", "", "", "", 1, 0)
	want := filepath.Join("/videos", "clips", "unspecified", "unspecified", "0000-unspecified-unspecified-1.mp4")
	assert.Equal(t, want, got)
}

func TestWindow(t *testing.T) {
	start, duration := Window(60000)
	assert.InDelta(t, 55.0, start, 0.001)
	assert.InDelta(t, 20.0, duration, 0.001)

	// Early events clamp the lead at the start of the video.
	start, duration = Window(2000)
	assert.InDelta(t, 0.0, start, 0.001)
	assert.InDelta(t, 17.0, duration, 0.001)
}
