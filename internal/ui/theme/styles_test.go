package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbtop/internal/infrastructure/config"
)

func TestPaletteFromConfig_FillsBlanks(t *testing.T) {
	p := PaletteFromConfig(&config.ColorPalette{Accent: "#0078d4", Text: "  "})

	assert.Equal(t, "#0078d4", p.Accent)
	assert.Equal(t, "#ffffff", p.Text)
	assert.Equal(t, "#0a0a0b", p.Background)
	assert.Equal(t, "#ef4444", p.Destructive)
}

func TestNew_UsesConfiguredPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#0078d4"

	s := New(cfg)
	assert.Equal(t, lipgloss.Color("#0078d4"), s.BorderFocused.Fg)
	assert.Equal(t, lipgloss.Color("#0078d4"), s.Apps.Selected.Bg)
	assert.Equal(t, lipgloss.Color("#0a0a0b"), s.Desktop.Bg)
}

func TestNew_NilConfig(t *testing.T) {
	s := New(nil)
	assert.Equal(t, DefaultDarkPalette(), s.Palette)
	assert.Equal(t, lipgloss.Color("#4ade80"), s.TaskbarFocused.Bg)
}
