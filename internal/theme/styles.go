package theme

import "github.com/charmbracelet/lipgloss"

// Main output styles
var (
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ContextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)
)

// Priority styles
var (
	DoneMarkStyle = lipgloss.NewStyle().
			Foreground(ColorDone).
			Bold(true)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true)

	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(3).
			Align(lipgloss.Right)

	OpenMarkStyle = lipgloss.NewStyle().
			Foreground(ColorOpen)
)

// Focus styles
var (
	BreakStyle = lipgloss.NewStyle().
			Foreground(ColorBreak)

	FocusMarkStyle = lipgloss.NewStyle().
			Foreground(ColorFocus).
			Bold(true)

	FocusStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorOpen)
)
