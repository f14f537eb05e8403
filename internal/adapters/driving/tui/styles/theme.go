// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#D97706"), // Amber
		Foreground: lipgloss.Color("#E7E5E4"), // Light gray
		Muted:      lipgloss.Color("#78716C"), // Medium gray
		Success:    lipgloss.Color("#A3E635"), // Green
		Error:      lipgloss.Color("#F87171"), // Red
		Border:     lipgloss.Color("#44403C"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// NewStyles builds styles from a theme.
func NewStyles(t *Theme) *Styles {
	return &Styles{
		theme:    t,
		Title:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Normal:   lipgloss.NewStyle().Foreground(t.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Help:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// Theme returns the theme the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
