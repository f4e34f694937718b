package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAppKind is returned when an app kind name is not recognized.
var ErrUnknownAppKind = errors.New("unknown app kind")

// AppKind selects which app content a window hosts.
type AppKind string

const (
	AppNotepad      AppKind = "notepad"
	AppFileExplorer AppKind = "file-explorer"
	AppBrowser      AppKind = "browser"
	AppTerminal     AppKind = "terminal"
	AppSettings     AppKind = "settings"
	AppShooterGame  AppKind = "shooter-game"
	AppMusicPlayer  AppKind = "music-player"
	AppPixelArt     AppKind = "pixel-art"
)

// App describes a launchable application.
type App struct {
	Kind  AppKind `json:"kind" yaml:"kind"`
	Title string  `json:"title" yaml:"title"` // Default window title
	Glyph string  `json:"glyph" yaml:"glyph"` // Single-cell icon for icons and taskbar
}

var appCatalog = []App{
	{Kind: AppNotepad, Title: "Notepad", Glyph: "✎"},
	{Kind: AppFileExplorer, Title: "File Explorer", Glyph: "▤"},
	{Kind: AppBrowser, Title: "Browser", Glyph: "◎"},
	{Kind: AppTerminal, Title: "Terminal", Glyph: "▶"},
	{Kind: AppSettings, Title: "Settings", Glyph: "⚙"},
	{Kind: AppShooterGame, Title: "Space Invaders", Glyph: "▲"},
	{Kind: AppMusicPlayer, Title: "Music Player", Glyph: "♪"},
	{Kind: AppPixelArt, Title: "Pixel Art", Glyph: "▦"},
}

// String returns the kind name.
func (k AppKind) String() string {
	return string(k)
}

// Valid reports whether k belongs to the catalog.
func (k AppKind) Valid() bool {
	_, ok := LookupApp(k)
	return ok
}

// AllApps returns the catalog in launcher order.
func AllApps() []App {
	apps := make([]App, len(appCatalog))
	copy(apps, appCatalog)
	return apps
}

// AllAppKinds returns every app kind in launcher order.
func AllAppKinds() []AppKind {
	kinds := make([]AppKind, 0, len(appCatalog))
	for _, app := range appCatalog {
		kinds = append(kinds, app.Kind)
	}
	return kinds
}

// LookupApp returns the catalog entry for kind.
func LookupApp(kind AppKind) (App, bool) {
	for _, app := range appCatalog {
		if app.Kind == kind {
			return app, true
		}
	}
	return App{}, false
}

// ParseAppKind parses a kind name, case-insensitively.
func ParseAppKind(s string) (AppKind, error) {
	kind := AppKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAppKind, s)
	}
	return kind, nil
}

// DefaultTitle returns the catalog title for kind, falling back to the kind name.
func DefaultTitle(kind AppKind) string {
	if app, ok := LookupApp(kind); ok {
		return app.Title
	}
	return kind.String()
}
