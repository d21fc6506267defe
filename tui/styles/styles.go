// Package styles provides Lipgloss styles for the TUI using a pitch-side
// palette: field greens with cream and amber accents.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	// Night is the main background colour
	Night = lipgloss.Color("#121A14")
	// Shadow is a secondary dark background
	Shadow = lipgloss.Color("#1A241C")
	// Moss is the border/dim accent colour
	Moss = lipgloss.Color("#4A5D4E")
	// Pitch is used for highlights and focus states
	Pitch = lipgloss.Color("#2E7D4F")
	// Straw is a secondary text colour
	Straw = lipgloss.Color("#A8A078")
	// Cream is the primary text colour
	Cream = lipgloss.Color("#F0E6C8")
	// Amber is an accent colour for headers and special elements
	Amber = lipgloss.Color("#D9A441")
	// Sky is an accent colour for information and interactive elements
	Sky = lipgloss.Color("#4FA3C7")
	// Red is used for warnings and errors
	Red = lipgloss.Color("#C2433B")
	// Green is used for success messages
	Green = lipgloss.Color("#7FA65A")
)

// Pre-defined styles using the color palette

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Moss)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Pitch).
	Foreground(Cream).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Cream)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Straw)

// Header is the style for panel headers
var Header = lipgloss.NewStyle().
	Foreground(Amber).
	Bold(true)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
