// Package ui provides the styling, interactive prompts and table output for
// the expgen CLI.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status colors shared by both themes.
var (
	colorError   = lipgloss.Color("#E53935")
	colorSuccess = lipgloss.Color("#43A047")
	colorWarning = lipgloss.Color("#FFC107")
	colorInfo    = lipgloss.Color("#2196F3")
)

// Theme is the brand palette for one terminal background.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme uses the brand blue on light backgrounds.
func LightTheme() Theme {
	return Theme{
		Foreground: "#1428A0",
		Primary:    "#1428A0",
		Accent:     "#2189FF",
		Muted:      "#8A8F98",
		Border:     "#D0D4DA",
	}
}

// DarkTheme lightens the palette for dark backgrounds.
func DarkTheme() Theme {
	return Theme{
		Foreground: "#F2F2F2",
		Primary:    "#6EA8FF",
		Accent:     "#2189FF",
		Muted:      "#6B7280",
		Border:     "#374151",
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from COLORFGBG or EXPGEN_DARK_MODE=1, light otherwise.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; ANSI 0-6 and 8 are dark backgrounds.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}

	if os.Getenv("EXPGEN_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles are the rendered styles used by prompts, tables and summaries.
type Styles struct {
	Theme Theme

	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Prompt chrome
	Prompt   lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Hint     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles derives Styles from theme.
func NewStyles(theme Theme) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return Styles{
		Theme:    theme,
		Title:    fg(theme.Primary).Bold(true),
		Body:     fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Bold:     fg(theme.Foreground).Bold(true),
		Prompt:   fg(theme.Accent).Bold(true),
		Cursor:   fg(theme.Accent).Bold(true),
		Selected: fg(theme.Accent),
		Disabled: fg(theme.Muted).Bold(true),
		Hint:     fg(theme.Muted).Italic(true),
		Success:  fg(colorSuccess).Bold(true),
		Error:    fg(colorError).Bold(true),
		Warning:  fg(colorWarning).Bold(true),
		Info:     fg(colorInfo),
		Divider:  fg(theme.Border),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Banner returns the heading printed when the generator starts.
func Banner(s Styles) string {
	return s.Title.Render("🎭 Experiment E2E Test Generator")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", width))
}
