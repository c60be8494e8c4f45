// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
)

// Text styles.
var (
	Heading = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted   = lipgloss.NewStyle().Foreground(Slate)
	Failure = lipgloss.NewStyle().Bold(true).Foreground(Red)
	Caution = lipgloss.NewStyle().Foreground(Yellow)
)
