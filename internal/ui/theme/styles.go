package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtop/internal/infrastructure/config"
	"github.com/bnema/dumbtop/internal/ui/apps"
	"github.com/bnema/dumbtop/internal/ui/canvas"
)

// Styles holds every cell style the desktop paints with.
type Styles struct {
	Palette Palette

	Desktop      canvas.Style
	Icon         canvas.Style
	IconSelected canvas.Style

	Border        canvas.Style
	BorderFocused canvas.Style
	TitleBar      canvas.Style
	TitleFocused  canvas.Style
	Button        canvas.Style
	CloseButton   canvas.Style

	Taskbar          canvas.Style
	TaskbarFocused   canvas.Style
	TaskbarMinimized canvas.Style
	Clock            canvas.Style

	Menu         canvas.Style
	MenuMuted    canvas.Style
	MenuSelected canvas.Style
	MenuHeader   canvas.Style
	Danger       canvas.Style

	Apps apps.Palette
}

// New builds styles from the configured palette; nil selects the defaults.
func New(cfg *config.Config) *Styles {
	if cfg == nil {
		return FromPalette(DefaultDarkPalette())
	}
	return FromPalette(PaletteFromConfig(&cfg.Appearance.Palette))
}

// FromPalette builds styles from p.
func FromPalette(p Palette) *Styles {
	bg := lipgloss.Color(p.Background)
	surface := lipgloss.Color(p.Surface)
	variant := lipgloss.Color(p.SurfaceVariant)
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)
	border := lipgloss.Color(p.Border)

	s := &Styles{Palette: p}

	s.Desktop = canvas.Style{Fg: muted, Bg: bg}
	s.Icon = canvas.Style{Fg: text, Bg: bg}
	s.IconSelected = canvas.Style{Fg: bg, Bg: accent, Bold: true}

	s.Border = canvas.Style{Fg: border, Bg: surface}
	s.BorderFocused = canvas.Style{Fg: accent, Bg: surface}
	s.TitleBar = canvas.Style{Fg: muted, Bg: variant}
	s.TitleFocused = canvas.Style{Fg: text, Bg: variant, Bold: true}
	s.Button = canvas.Style{Fg: text, Bg: variant}
	s.CloseButton = canvas.Style{Fg: lipgloss.Color(p.Destructive), Bg: variant, Bold: true}

	s.Taskbar = canvas.Style{Fg: text, Bg: surface}
	s.TaskbarFocused = canvas.Style{Fg: bg, Bg: accent, Bold: true}
	s.TaskbarMinimized = canvas.Style{Fg: muted, Bg: surface}
	s.Clock = canvas.Style{Fg: text, Bg: surface}

	s.Menu = canvas.Style{Fg: text, Bg: variant}
	s.MenuMuted = canvas.Style{Fg: muted, Bg: variant}
	s.MenuSelected = canvas.Style{Fg: bg, Bg: accent}
	s.MenuHeader = canvas.Style{Fg: accent, Bg: variant, Bold: true}
	s.Danger = canvas.Style{Fg: lipgloss.Color(p.Destructive), Bg: variant}

	s.Apps = apps.Palette{
		Normal:   canvas.Style{Fg: text, Bg: surface},
		Muted:    canvas.Style{Fg: muted, Bg: surface},
		Accent:   canvas.Style{Fg: accent, Bg: surface, Bold: true},
		Selected: canvas.Style{Fg: bg, Bg: accent},
		Header:   canvas.Style{Fg: text, Bg: variant, Bold: true},
	}
	return s
}
