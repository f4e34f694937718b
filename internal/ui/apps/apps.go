// Package apps holds the content shown inside windows. Every app keeps its
// own mock state and never sees the window store.
package apps

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/ui/canvas"
)

// Palette carries the styles apps draw with.
type Palette struct {
	Normal   canvas.Style
	Muted    canvas.Style
	Accent   canvas.Style
	Selected canvas.Style
	Header   canvas.Style
}

// DefaultPalette is used when no theme is supplied.
func DefaultPalette() Palette {
	bg := lipgloss.Color("#1a1a1b")
	return Palette{
		Normal:   canvas.Style{Fg: "#ffffff", Bg: bg},
		Muted:    canvas.Style{Fg: "#909090", Bg: bg},
		Accent:   canvas.Style{Fg: "#4ade80", Bg: bg, Bold: true},
		Selected: canvas.Style{Fg: "#0a0a0b", Bg: "#4ade80"},
		Header:   canvas.Style{Fg: "#ffffff", Bg: "#2d2d2d", Bold: true},
	}
}

// Content renders an app into the content area of its window.
type Content interface {
	Render(r *canvas.Region, p Palette)
}

// KeyHandler is implemented by apps that accept keyboard input while focused.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) bool
}

// ClickHandler is implemented by apps that react to clicks, in content cells.
type ClickHandler interface {
	HandleClick(x, y int) bool
}

// Ticker is implemented by apps that animate. Tick reports whether the app changed.
type Ticker interface {
	Tick(elapsed time.Duration) bool
}

// New returns fresh content for kind.
func New(kind entity.AppKind) Content {
	switch kind {
	case entity.AppNotepad:
		return NewNotepad()
	case entity.AppFileExplorer:
		return NewFileExplorer()
	case entity.AppBrowser:
		return NewBrowser()
	case entity.AppTerminal:
		return NewTerminal()
	case entity.AppSettings:
		return NewSettings()
	case entity.AppShooterGame:
		return NewShooter()
	case entity.AppMusicPlayer:
		return NewMusicPlayer()
	case entity.AppPixelArt:
		return NewPixelArt()
	default:
		return unknown{kind: kind}
	}
}

type unknown struct {
	kind entity.AppKind
}

func (u unknown) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	r.Text(1, 0, "Unknown app: "+u.kind.String(), p.Muted)
}

// header paints a full-width bar on row y.
func header(r *canvas.Region, y int, text string, p Palette) {
	r.FillRect(0, y, r.Width(), 1, ' ', p.Header)
	r.Text(1, y, text, p.Header)
}

// clampIndex keeps i within [0, n).
func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return max(0, min(i, n-1))
}
