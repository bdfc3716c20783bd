// Package styles builds lipgloss styles from the application theme.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

// Styles contains pre-configured lipgloss styles derived from a theme.
type Styles struct {
	theme domain.Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// TabActive style for the active section tab.
	TabActive lipgloss.Style

	// TabInactive style for the other section tabs.
	TabInactive lipgloss.Style

	// Note style for a note card on the board.
	Note lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// colour resolves a theme variable, falling back to the default palette
// when the theme omits it.
func colour(t domain.Theme, name string) lipgloss.Color {
	if v, ok := t.Colours[name]; ok && v != "" {
		return lipgloss.Color(v)
	}
	return lipgloss.Color(domain.DefaultTheme().Colours[name])
}

// NewStyles creates styles from a theme.
func NewStyles(theme domain.Theme) *Styles {
	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colour(theme, "primary")),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(colour(theme, "secondary")),

		Normal: lipgloss.NewStyle().
			Foreground(colour(theme, "foreground")),

		Muted: lipgloss.NewStyle().
			Foreground(colour(theme, "muted")),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(colour(theme, "foreground")).
			Background(colour(theme, "primary")),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(colour(theme, "background")).
			Background(colour(theme, "primary")).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(colour(theme, "muted")).
			Padding(0, 1),

		Note: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colour(theme, "border")).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(colour(theme, "error")),

		Success: lipgloss.NewStyle().
			Foreground(colour(theme, "success")),

		Warning: lipgloss.NewStyle().
			Foreground(colour(theme, "warning")),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colour(theme, "border")).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(colour(theme, "muted")).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(colour(theme, "muted")),
	}
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(domain.DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() domain.Theme {
	return s.theme
}
