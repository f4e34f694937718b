// Package theme turns the configured palette into desktop and app styles.
package theme

import (
	"strings"

	"github.com/bnema/dumbtop/internal/infrastructure/config"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background     string // Desktop wallpaper
	Surface        string // Window bodies, taskbar
	SurfaceVariant string // Title bars, headers
	Text           string
	Muted          string
	Accent         string
	Border         string
	// Not user-editable
	Warning     string
	Destructive string
}

// DefaultDarkPalette returns the default dark palette.
func DefaultDarkPalette() Palette {
	return PaletteFromConfig(nil)
}

// PaletteFromConfig creates a Palette from config values, filling missing values with defaults.
func PaletteFromConfig(cfg *config.ColorPalette) Palette {
	defaults := config.DefaultDarkPalette()
	p := Palette{
		Background:     defaults.Background,
		Surface:        defaults.Surface,
		SurfaceVariant: defaults.SurfaceVariant,
		Text:           defaults.Text,
		Muted:          defaults.Muted,
		Accent:         defaults.Accent,
		Border:         defaults.Border,
		Warning:        "#f59e0b",
		Destructive:    "#ef4444",
	}
	if cfg == nil {
		return p
	}

	p.Background = Coalesce(cfg.Background, p.Background)
	p.Surface = Coalesce(cfg.Surface, p.Surface)
	p.SurfaceVariant = Coalesce(cfg.SurfaceVariant, p.SurfaceVariant)
	p.Text = Coalesce(cfg.Text, p.Text)
	p.Muted = Coalesce(cfg.Muted, p.Muted)
	p.Accent = Coalesce(cfg.Accent, p.Accent)
	p.Border = Coalesce(cfg.Border, p.Border)
	return p
}

// Coalesce returns value unless it is blank.
func Coalesce(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
