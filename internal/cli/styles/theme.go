// Package styles renders the output of the dumbtop commands with lipgloss,
// in the same palette as the desktop.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtop/internal/infrastructure/config"
	"github.com/bnema/dumbtop/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Success        lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	SuccessStyle lipgloss.Style

	// Yes/no buttons
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from config; blank colors fall back to the defaults.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		return NewThemeFromPalette(theme.DefaultDarkPalette())
	}
	return NewThemeFromPalette(theme.PaletteFromConfig(&cfg.Appearance.Palette))
}

// NewThemeFromPalette creates a Theme from the desktop palette.
func NewThemeFromPalette(p theme.Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(p.Destructive),
		Success:        lipgloss.Color(p.Accent),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)
	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}
