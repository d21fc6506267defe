package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimecodeMs(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"3", 180000},
		{"1:23", 83000},
		{"0:30", 30000},
		{"10:00", 600000},
		{":30", 30000},
		{"2:", 120000},
		{":", 0},
		// Dot form reads the right-hand part as literal seconds.
		{"2.5", 125000},
		{"1.23", 83000},
		{"2.", 120000},
		{".30", 30000},
		// A malformed dot pair never falls back to float parsing.
		{"2.5e3", 0},
		{"1.x", 0},
		// Plain number of minutes, truncated.
		{"3.0.1", 0},
		{"abc", 0},
		{"1:2:3", 0},
		{"-1", 0},
		{"-1:30", 0},
		{"1:-30", 0},
		{"a:b", 0},
		// Values big enough to overflow the conversion are rejected.
		{"153722867280913", 0},
		{"2e14", 0},
		{"1e300", 0},
		{"200000000000000000:0", 0},
		{"0:200000000000000000", 0},
		{"200000000000000000.0", 0},
		{"nan", 0},
		{"inf", 0},
	}
	for _, tt := range tests {
		got := ParseTimecodeMs(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.GreaterOrEqual(t, got, 0, "input %q", tt.input)
	}
}

func TestFormatMs(t *testing.T) {
	assert.Equal(t, "0:00", FormatMs(0))
	assert.Equal(t, "1:23", FormatMs(83000))
	assert.Equal(t, "10:05", FormatMs(605000))
	assert.Equal(t, "0:00", FormatMs(-500))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:01:30", FormatTime(90))
	assert.Equal(t, "1:11:22", FormatTime(4282))
	assert.Equal(t, "0:00:00", FormatTime(-5))
}
