package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	accentColor  = lipgloss.Color("#EC4899") // Pink
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	errorColor   = lipgloss.Color("#EF4444") // Red

	// Header styles
	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 1)

	headerUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E0E0E0")).
			Background(primaryColor).
			Padding(0, 1)

	headerContainerStyle = lipgloss.NewStyle().
				Background(primaryColor)

	// Chat turn styles
	botLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	typingStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Quick start menu styles
	quickStartTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	quickStartRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	quickStartSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3B3B3B")).
				Padding(0, 1)

	quickStartLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	quickStartDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#A0A0A0"))

	// Chat pane border
	chatViewBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(mutedColor)

	// Input line styles
	inputLineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2D2D2D")).
			Padding(0, 1)

	inputLineFocusedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3B3B3B")).
				Padding(0, 1)

	// Status bar style
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	errorBarStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Padding(0, 1)
)
