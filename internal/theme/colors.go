package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - section headers
)

// Priority state colors
const (
	ColorDone  Color = "2" // Green - ticked
	ColorOpen  Color = "3" // Yellow - still to do
	ColorFocus Color = "205"
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// ColorBreak marks pauses in the focus log
const ColorBreak Color = "214"
