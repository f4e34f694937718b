// Package shell is the desktop chrome: desktop icons, the taskbar, the start
// menu and the power menu. It holds only show/hide state and turns clicks
// into window intents.
package shell

import (
	"context"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/dumbtop/internal/application/port"
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/logging"
)

//go:generate mockgen -destination=mocks/mock_window_intents.go -package=mocks . WindowIntents

// WindowIntents is the slice of the window store the chrome dispatches to.
type WindowIntents interface {
	Open(ctx context.Context, kind entity.AppKind, title string) entity.WindowID
	Toggle(ctx context.Context, id entity.WindowID) bool
	Focus(ctx context.Context, id entity.WindowID) bool
	Snapshot() entity.Snapshot
}

// Options configures the chrome.
type Options struct {
	DesktopIcons []entity.AppKind
	Pinned       []entity.AppKind
	DoubleClick  time.Duration // Max gap between two clicks on the same icon
	ClockFormat  string        // time.Format layout
	DateFormat   string
}

// DefaultOptions returns the stock desktop layout.
func DefaultOptions() Options {
	return Options{
		DesktopIcons: []entity.AppKind{
			entity.AppNotepad,
			entity.AppFileExplorer,
			entity.AppBrowser,
			entity.AppTerminal,
			entity.AppSettings,
		},
		Pinned:      entity.AllAppKinds(),
		DoubleClick: 400 * time.Millisecond,
		ClockFormat: "15:04",
		DateFormat:  "Jan 2",
	}
}

// TaskbarEntry is one open-window button.
type TaskbarEntry struct {
	ID        entity.WindowID
	Kind      entity.AppKind
	Title     string
	Glyph     string
	Focused   bool
	Minimized bool
}

// Recommendation is a static start menu suggestion.
type Recommendation struct {
	Name string
	When string
}

type iconClick struct {
	kind entity.AppKind
	at   time.Time
}

// Shell dispatches chrome interactions.
type Shell struct {
	windows WindowIntents
	clock   port.Clock
	opts    Options

	startMenuOpen bool
	powerMenuOpen bool
	selectedIcon  entity.AppKind
	lastClick     *iconClick
}

// New creates the chrome over the given window intents.
func New(windows WindowIntents, clock port.Clock, opts Options) *Shell {
	return &Shell{
		windows: windows,
		clock:   clock,
		opts:    opts,
	}
}

// SetOptions swaps the layout, e.g. after a config reload.
func (s *Shell) SetOptions(opts Options) {
	s.opts = opts
}

// Options returns the active layout.
func (s *Shell) Options() Options {
	return s.opts
}

// DesktopIcons returns the icons shown on the desktop.
func (s *Shell) DesktopIcons() []entity.App {
	return appsFor(s.opts.DesktopIcons)
}

// PinnedApps returns the apps pinned to the taskbar and the start menu.
func (s *Shell) PinnedApps() []entity.App {
	return appsFor(s.opts.Pinned)
}

// SelectedIcon returns the last clicked desktop icon.
func (s *Shell) SelectedIcon() entity.AppKind {
	return s.selectedIcon
}

// ClickDesktopIcon selects the icon and opens its app when this is the
// second click on it within the double-click window.
func (s *Shell) ClickDesktopIcon(ctx context.Context, kind entity.AppKind) (entity.WindowID, bool) {
	now := s.clock.Now()
	s.selectedIcon = kind
	s.closeMenus()

	if s.lastClick != nil && s.lastClick.kind == kind && now.Sub(s.lastClick.at) <= s.opts.DoubleClick {
		s.lastClick = nil
		return s.open(ctx, kind, "desktop"), true
	}

	s.lastClick = &iconClick{kind: kind, at: now}
	return "", false
}

// ActivateDesktopIcon opens the app of a desktop icon without a double click.
func (s *Shell) ActivateDesktopIcon(ctx context.Context, kind entity.AppKind) entity.WindowID {
	s.selectedIcon = kind
	s.lastClick = nil
	s.closeMenus()
	return s.open(ctx, kind, "desktop")
}

// SelectDesktopIcon highlights an icon without counting as a click.
func (s *Shell) SelectDesktopIcon(kind entity.AppKind) {
	s.selectedIcon = kind
	s.lastClick = nil
}

// ClearSelection deselects desktop icons, as a click on empty desktop does.
func (s *Shell) ClearSelection() {
	s.selectedIcon = ""
	s.lastClick = nil
	s.closeMenus()
}

// LaunchPinned opens a pinned taskbar app.
func (s *Shell) LaunchPinned(ctx context.Context, kind entity.AppKind) entity.WindowID {
	return s.open(ctx, kind, "taskbar")
}

// ClickTaskbarWindow toggles an open window from its taskbar button.
func (s *Shell) ClickTaskbarWindow(ctx context.Context, id entity.WindowID) bool {
	s.closeMenus()
	return s.windows.Toggle(ctx, id)
}

// CycleFocus focuses the window after the focused one in taskbar order,
// wrapping around. Minimized windows are skipped while any window has focus.
func (s *Shell) CycleFocus(ctx context.Context) (entity.WindowID, bool) {
	windows := s.windows.Snapshot().Windows
	if len(windows) == 0 {
		return "", false
	}

	start := -1
	if focused, ok := windows.Focused(); ok {
		start = windows.Index(focused.ID)
	}

	var fallback entity.WindowID
	for step := 1; step <= len(windows); step++ {
		w := windows[(start+step+len(windows))%len(windows)]
		if w.Minimized {
			if fallback == "" {
				fallback = w.ID
			}
			continue
		}
		if w.Focused {
			continue
		}
		return w.ID, s.windows.Focus(ctx, w.ID)
	}

	if fallback != "" && start < 0 {
		return fallback, s.windows.Focus(ctx, fallback)
	}
	return "", false
}

// TaskbarEntries lists one button per open window, in opening order.
func (s *Shell) TaskbarEntries() []TaskbarEntry {
	windows := s.windows.Snapshot().Windows
	entries := make([]TaskbarEntry, 0, len(windows))
	for _, w := range windows {
		glyph := "□"
		if app, ok := entity.LookupApp(w.Kind); ok {
			glyph = app.Glyph
		}
		entries = append(entries, TaskbarEntry{
			ID:        w.ID,
			Kind:      w.Kind,
			Title:     w.Title,
			Glyph:     glyph,
			Focused:   w.Focused,
			Minimized: w.Minimized,
		})
	}
	return entries
}

// StartMenuOpen reports whether the start menu is shown.
func (s *Shell) StartMenuOpen() bool { return s.startMenuOpen }

// PowerMenuOpen reports whether the power menu is shown.
func (s *Shell) PowerMenuOpen() bool { return s.powerMenuOpen }

// ToggleStartMenu shows or hides the start menu. Hiding it also hides the power menu.
func (s *Shell) ToggleStartMenu() {
	s.startMenuOpen = !s.startMenuOpen
	if !s.startMenuOpen {
		s.powerMenuOpen = false
	}
}

// TogglePowerMenu shows or hides the power menu inside the start menu.
func (s *Shell) TogglePowerMenu() {
	if !s.startMenuOpen {
		return
	}
	s.powerMenuOpen = !s.powerMenuOpen
}

// CloseMenus hides the start and power menus.
func (s *Shell) CloseMenus() {
	s.closeMenus()
}

// LaunchFromStartMenu opens an app and closes the start menu.
func (s *Shell) LaunchFromStartMenu(ctx context.Context, kind entity.AppKind) entity.WindowID {
	id := s.open(ctx, kind, "start-menu")
	s.closeMenus()
	return id
}

// ChoosePower closes the menus and returns the action for the caller to carry out.
func (s *Shell) ChoosePower(ctx context.Context, action PowerAction) PowerAction {
	s.closeMenus()
	logging.FromContext(ctx).Info().Str("action", string(action)).Msg("power option selected")
	return action
}

// SearchApps fuzzy-matches the pinned apps by title and kind. An empty
// query returns every pinned app.
func (s *Shell) SearchApps(query string) []entity.App {
	pinned := s.PinnedApps()
	if query == "" {
		return pinned
	}

	matches := fuzzy.FindFrom(query, appSource(pinned))
	found := make([]entity.App, 0, len(matches))
	for _, m := range matches {
		found = append(found, pinned[m.Index])
	}
	return found
}

// Recommended returns the start menu suggestions.
func (s *Shell) Recommended() []Recommendation {
	return []Recommendation{
		{Name: "Document.pdf", When: "Today"},
		{Name: "Image.jpg", When: "Yesterday"},
	}
}

// ClockText returns the taskbar time.
func (s *Shell) ClockText() string {
	return s.clock.Now().Format(s.opts.ClockFormat)
}

// DateText returns the taskbar date.
func (s *Shell) DateText() string {
	return s.clock.Now().Format(s.opts.DateFormat)
}

func (s *Shell) open(ctx context.Context, kind entity.AppKind, source string) entity.WindowID {
	id := s.windows.Open(ctx, kind, entity.DefaultTitle(kind))
	logging.FromContext(ctx).Debug().
		Str("kind", kind.String()).
		Str("source", source).
		Str("window_id", string(id)).
		Msg("app launched")
	return id
}

func (s *Shell) closeMenus() {
	s.startMenuOpen = false
	s.powerMenuOpen = false
}

func appsFor(kinds []entity.AppKind) []entity.App {
	apps := make([]entity.App, 0, len(kinds))
	for _, kind := range kinds {
		if app, ok := entity.LookupApp(kind); ok {
			apps = append(apps, app)
		}
	}
	return apps
}

// appSource adapts apps to fuzzy.Source, matching on "title kind".
type appSource []entity.App

func (a appSource) String(i int) string { return a[i].Title + " " + a[i].Kind.String() }

func (a appSource) Len() int { return len(a) }
