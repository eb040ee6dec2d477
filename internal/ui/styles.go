// Package ui provides the terminal styling for aoc output.
// Styles are bound to a lipgloss renderer for the destination writer, so
// output redirected to a file or pipe is plain text.
package ui

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightPrimary    = lipgloss.Color("#101F38")
	LightMuted      = lipgloss.Color("#6b7280")

	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A") // Lime Green (flipped)
	DarkMuted      = lipgloss.Color("#9aa5b8")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{Foreground: LightForeground, Primary: LightPrimary, Muted: LightMuted}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{Foreground: DarkForeground, Primary: DarkPrimary, Muted: DarkMuted, IsDark: true}
}

// DetectTheme picks a theme from COLORFGBG ("fg;bg"); dark backgrounds
// (ANSI 0-6 and 8) select the dark theme.
func DetectTheme() Theme {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Label   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates styles for renderer r with the given theme.
func NewStyles(r *lipgloss.Renderer, theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: r.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Label: r.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Body: r.NewStyle().
			Foreground(theme.Foreground),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Bold: r.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: r.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: r.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(Warning).
			Bold(true),
	}
}

// StylesFor returns styles whose color profile matches w.
func StylesFor(w io.Writer) Styles {
	return NewStyles(lipgloss.NewRenderer(w), DetectTheme())
}
