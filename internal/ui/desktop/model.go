// Package desktop is the Bubble Tea front end: it maps terminal cells onto
// desktop pixels, routes input to the chrome and the window frames, and paints
// the whole desktop each frame.
package desktop

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtop/internal/application/usecase"
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/logging"
	"github.com/bnema/dumbtop/internal/ui/apps"
	"github.com/bnema/dumbtop/internal/ui/frame"
	"github.com/bnema/dumbtop/internal/ui/shell"
	"github.com/bnema/dumbtop/internal/ui/theme"
)

// Store is everything the desktop needs from the window store.
type Store interface {
	frame.Store
	shell.WindowIntents
	Close(ctx context.Context, id entity.WindowID) bool
	Minimize(ctx context.Context, id entity.WindowID) bool
	Maximize(ctx context.Context, id entity.WindowID) bool
	Subscribe(listener usecase.SnapshotListener) (unsubscribe func())
}

// Options controls geometry and animation.
type Options struct {
	CellWidth    int // Desktop pixels per terminal column
	CellHeight   int // Desktop pixels per terminal row
	Constraints  frame.Constraints
	TickInterval time.Duration
}

// DefaultOptions returns an 8x16 cell grid ticking apps every 100ms.
func DefaultOptions() Options {
	return Options{
		CellWidth:    8,
		CellHeight:   16,
		Constraints:  frame.DefaultConstraints(),
		TickInterval: 100 * time.Millisecond,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.CellWidth <= 0 {
		o.CellWidth = d.CellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = d.CellHeight
	}
	if o.TickInterval <= 0 {
		o.TickInterval = d.TickInterval
	}
	return o
}

// SettingsMsg swaps styles and layout, e.g. after a config reload.
type SettingsMsg struct {
	Styles  *theme.Styles
	Shell   shell.Options
	Options Options
}

type (
	snapshotMsg  struct{}
	clockTickMsg time.Time
	appTickMsg   time.Time
)

// Model is the desktop.
type Model struct {
	ctx    context.Context
	store  Store
	shell  *shell.Shell
	styles *theme.Styles
	opts   Options
	grid   grid

	keys   keyMap
	help   help.Model
	search textinput.Model

	width  int
	height int

	contents    map[entity.WindowID]apps.Content
	controllers map[entity.WindowID]*frame.Controller
	capture     *frame.Controller
	menuCursor  int
	powerCursor int
	lastTick    time.Time

	changes    <-chan struct{}
	onViewport func(entity.Size, frame.Constraints)
}

// New creates the desktop model.
func New(ctx context.Context, store Store, sh *shell.Shell, styles *theme.Styles, opts Options) Model {
	if styles == nil {
		styles = theme.New(nil)
	}
	opts = opts.normalized()

	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "Type here to search"
	search.CharLimit = 40

	return Model{
		ctx:         ctx,
		store:       store,
		shell:       sh,
		styles:      styles,
		opts:        opts,
		grid:        grid{cellW: opts.CellWidth, cellH: opts.CellHeight},
		keys:        defaultKeyMap(),
		help:        h,
		search:      search,
		width:       80,
		height:      24,
		contents:    make(map[entity.WindowID]apps.Content),
		controllers: make(map[entity.WindowID]*frame.Controller),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(clockTick(), appTick(m.opts.TickInterval), waitForChange(m.changes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.notifyViewport()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case snapshotMsg:
		m.sync()
		return m, waitForChange(m.changes)

	case clockTickMsg:
		return m, clockTick()

	case appTickMsg:
		m.tickApps(time.Time(msg))
		return m, appTick(m.opts.TickInterval)

	case SettingsMsg:
		m.applySettings(msg)
		return m, nil
	}
	return m, nil
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func appTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return appTickMsg(t) })
}

// waitForChange blocks until the store publishes a new snapshot.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return snapshotMsg{}
	}
}

func (m *Model) applySettings(msg SettingsMsg) {
	if msg.Styles != nil {
		m.styles = msg.Styles
	}
	m.shell.SetOptions(msg.Shell)
	m.opts = msg.Options.normalized()
	m.grid = grid{cellW: m.opts.CellWidth, cellH: m.opts.CellHeight}

	// Controllers carry the old constraints.
	if m.capture != nil {
		m.capture.End()
		m.capture = nil
	}
	clear(m.controllers)
	m.notifyViewport()
	logging.FromContext(m.ctx).Debug().Msg("desktop settings applied")
}

func (m Model) notifyViewport() {
	if m.onViewport != nil {
		m.onViewport(m.viewport(), m.opts.Constraints)
	}
}

// viewport is the desktop area above the taskbar, in pixels.
func (m Model) viewport() entity.Size {
	return entity.Size{
		Width:  m.width * m.grid.cellW,
		Height: max(0, m.height-1) * m.grid.cellH,
	}
}

// bounds returns the on-screen rectangle of w, aligned to cells.
func (m Model) bounds(w entity.Window) entity.Rect {
	return m.grid.snap(frame.Bounds(w, m.viewport()))
}

func (m Model) content(w entity.Window) apps.Content {
	c, ok := m.contents[w.ID]
	if !ok {
		c = apps.New(w.Kind)
		m.contents[w.ID] = c
	}
	return c
}

func (m Model) controller(id entity.WindowID) *frame.Controller {
	c, ok := m.controllers[id]
	if !ok {
		c = frame.NewController(m.store, id, m.opts.Constraints)
		m.controllers[id] = c
	}
	return c
}

// sync drops per-window state for windows that are gone.
func (m *Model) sync() {
	windows := m.store.Snapshot().Windows
	for id := range m.contents {
		if windows.Index(id) < 0 {
			delete(m.contents, id)
		}
	}
	for id := range m.controllers {
		if windows.Index(id) < 0 {
			delete(m.controllers, id)
		}
	}
	if m.capture != nil && windows.Index(m.capture.WindowID()) < 0 {
		m.capture.End()
		m.capture = nil
	}
}

func (m *Model) dropWindow(id entity.WindowID) {
	delete(m.contents, id)
	delete(m.controllers, id)
	if m.capture != nil && m.capture.WindowID() == id {
		m.capture.End()
		m.capture = nil
	}
}

func (m *Model) tickApps(now time.Time) {
	elapsed := m.opts.TickInterval
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	minimized := make(map[entity.WindowID]bool)
	for _, w := range m.store.Snapshot().Windows {
		minimized[w.ID] = w.Minimized
	}
	for id, c := range m.contents {
		if minimized[id] {
			continue
		}
		if t, ok := c.(apps.Ticker); ok {
			t.Tick(elapsed)
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.StartMenu):
		m.toggleStartMenu()
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Cycle):
		m.closeStartMenu()
		m.shell.CycleFocus(m.ctx)
		return nil
	}

	if m.shell.StartMenuOpen() {
		return m.handleStartMenuKey(msg)
	}

	focused, ok := m.store.Snapshot().Windows.Focused()
	switch {
	case key.Matches(msg, m.keys.Close):
		if ok {
			m.store.Close(m.ctx, focused.ID)
			m.dropWindow(focused.ID)
		}
	case key.Matches(msg, m.keys.Minimize):
		if ok {
			m.store.Minimize(m.ctx, focused.ID)
		}
	case key.Matches(msg, m.keys.Maximize):
		if ok {
			m.store.Maximize(m.ctx, focused.ID)
		}
	case ok:
		if h, isHandler := m.content(focused).(apps.KeyHandler); isHandler {
			h.HandleKey(msg)
		}
	default:
		m.handleDesktopKey(msg)
	}
	return nil
}

// handleDesktopKey moves the icon selection when no window has focus.
func (m *Model) handleDesktopKey(msg tea.KeyMsg) {
	icons := m.shell.DesktopIcons()
	if len(icons) == 0 {
		return
	}
	i := -1
	for n, app := range icons {
		if app.Kind == m.shell.SelectedIcon() {
			i = n
		}
	}

	switch msg.String() {
	case "up", "k":
		i = max(0, i-1)
	case "down", "j", "tab":
		i = min(len(icons)-1, i+1)
	case "enter":
		if i >= 0 {
			m.shell.ActivateDesktopIcon(m.ctx, icons[i].Kind)
		}
		return
	case "esc":
		m.shell.ClearSelection()
		return
	default:
		return
	}
	m.shell.SelectDesktopIcon(icons[i].Kind)
}

func (m *Model) handleStartMenuKey(msg tea.KeyMsg) tea.Cmd {
	if m.shell.PowerMenuOpen() {
		return m.handlePowerMenuKey(msg)
	}

	results := m.shell.SearchApps(m.search.Value())
	switch msg.Type {
	case tea.KeyEsc:
		m.closeStartMenu()
	case tea.KeyUp:
		m.menuCursor = max(0, m.menuCursor-1)
	case tea.KeyDown:
		m.menuCursor = max(0, min(len(results)-1, m.menuCursor+1))
	case tea.KeyTab:
		m.shell.TogglePowerMenu()
		m.powerCursor = 0
	case tea.KeyEnter:
		if len(results) > 0 {
			m.launchFromMenu(results[min(m.menuCursor, len(results)-1)].Kind)
		}
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.menuCursor = 0
		return cmd
	}
	return nil
}

func (m *Model) handlePowerMenuKey(msg tea.KeyMsg) tea.Cmd {
	actions := shell.PowerActions()
	switch msg.Type {
	case tea.KeyEsc, tea.KeyTab:
		m.shell.TogglePowerMenu()
	case tea.KeyUp:
		m.powerCursor = max(0, m.powerCursor-1)
	case tea.KeyDown:
		m.powerCursor = min(len(actions)-1, m.powerCursor+1)
	case tea.KeyEnter:
		return m.choosePower(actions[m.powerCursor])
	}
	return nil
}

func (m *Model) choosePower(action shell.PowerAction) tea.Cmd {
	m.search.Reset()
	m.search.Blur()
	if m.shell.ChoosePower(m.ctx, action) == shell.PowerShutdown {
		return tea.Quit
	}
	return nil
}

func (m *Model) launchFromMenu(kind entity.AppKind) {
	m.shell.LaunchFromStartMenu(m.ctx, kind)
	m.search.Reset()
	m.search.Blur()
}

func (m *Model) toggleStartMenu() {
	m.shell.ToggleStartMenu()
	m.menuCursor, m.powerCursor = 0, 0
	m.search.Reset()
	if m.shell.StartMenuOpen() {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

func (m *Model) closeStartMenu() {
	if m.shell.StartMenuOpen() {
		m.toggleStartMenu()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.capture != nil {
			m.capture.Move(m.ctx, m.grid.toPixel(msg.X, msg.Y), m.viewport())
			if !m.capture.Active() {
				m.capture = nil
			}
		}
	case tea.MouseActionRelease:
		if m.capture != nil {
			m.capture.End()
			m.capture = nil
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.press(msg.X, msg.Y)
		}
	}
	return nil
}

// press routes a left click, front to back: menus, taskbar, windows, icons.
func (m *Model) press(x, y int) tea.Cmd {
	if m.shell.StartMenuOpen() {
		if handled, cmd := m.pressStartMenu(x, y); handled {
			return cmd
		}
	}

	if y == m.height-1 {
		m.pressTaskbar(x, y)
		return nil
	}
	m.closeStartMenu()

	p := m.grid.toPixel(x, y)
	if w, ok := m.store.Snapshot().Windows.Topmost(p, m.bounds); ok {
		m.pressWindow(w, p, x, y)
		return nil
	}

	for i, app := range m.shell.DesktopIcons() {
		if iconRect(i).contains(x, y) {
			m.shell.ClickDesktopIcon(m.ctx, app.Kind)
			return nil
		}
	}
	m.shell.ClearSelection()
	return nil
}

func (m *Model) pressStartMenu(x, y int) (bool, tea.Cmd) {
	results := m.shell.SearchApps(m.search.Value())
	l := layoutStartMenu(m.height-1, len(results), len(m.shell.Recommended()))

	if m.shell.PowerMenuOpen() && l.powerMenu.contains(x, y) {
		for i, row := range l.powerRows {
			if row.contains(x, y) {
				return true, m.choosePower(shell.PowerActions()[i])
			}
		}
		return true, nil
	}
	if !l.rect.contains(x, y) {
		return false, nil
	}

	switch {
	case l.power.contains(x, y):
		m.shell.TogglePowerMenu()
		m.powerCursor = 0
	case y == l.search:
		m.search.Focus()
	default:
		for i, row := range l.apps {
			if row.contains(x, y) {
				m.launchFromMenu(results[i].Kind)
				break
			}
		}
	}
	return true, nil
}

func (m *Model) pressTaskbar(x, y int) {
	for _, item := range m.taskbarItems() {
		if !item.rect.contains(x, y) {
			continue
		}
		switch item.kind {
		case taskbarStart:
			m.toggleStartMenu()
		case taskbarPinned:
			m.closeStartMenu()
			m.shell.LaunchPinned(m.ctx, item.app.Kind)
		case taskbarWindow:
			m.closeStartMenu()
			m.shell.ClickTaskbarWindow(m.ctx, item.entry.ID)
		}
		return
	}
	m.closeStartMenu()
}

func (m *Model) pressWindow(w entity.Window, p entity.Point, x, y int) {
	bounds := m.bounds(w)
	chrome := m.grid.chrome()
	hit := frame.HitTest(bounds, p, w.Maximized, chrome)

	switch hit.Region {
	case frame.RegionTitleBar:
		if c := m.controller(w.ID); c.BeginDrag(m.ctx, p) {
			m.capture = c
		}
	case frame.RegionResize:
		if c := m.controller(w.ID); c.BeginResize(m.ctx, hit.Direction, p) {
			m.capture = c
		}
	case frame.RegionMinimize:
		m.store.Minimize(m.ctx, w.ID)
	case frame.RegionMaximize:
		m.store.Maximize(m.ctx, w.ID)
	case frame.RegionClose:
		m.store.Close(m.ctx, w.ID)
		m.dropWindow(w.ID)
	case frame.RegionContent:
		m.store.Focus(m.ctx, w.ID)
		if h, ok := m.content(w).(apps.ClickHandler); ok {
			area := m.grid.toCells(chrome.ContentRect(bounds))
			h.HandleClick(x-area.X, y-area.Y)
		}
	default:
		m.store.Focus(m.ctx, w.ID)
	}
}

func (m Model) taskbarItems() []taskbarItem {
	return taskbarLayout(m.width, m.height-1, m.shell.PinnedApps(), m.shell.TaskbarEntries(), len([]rune(m.clockText())))
}

func (m Model) clockText() string {
	return " " + m.shell.DateText() + "  " + m.shell.ClockText() + " "
}
