package desktop

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/ui/canvas"
	"github.com/bnema/dumbtop/internal/ui/shell"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	cv := canvas.New(m.width, m.height, m.styles.Desktop)
	m.renderIcons(cv)
	m.renderHelp(cv)
	for _, w := range m.store.Snapshot().Windows.VisibleByStackOrder() {
		m.renderWindow(cv, w)
	}
	m.renderTaskbar(cv)
	if m.shell.StartMenuOpen() {
		m.renderStartMenu(cv)
	}
	return cv.Render()
}

func (m Model) renderIcons(cv *canvas.Canvas) {
	selected := m.shell.SelectedIcon()
	for i, app := range m.shell.DesktopIcons() {
		r := iconRect(i)
		style := m.styles.Icon
		if app.Kind == selected {
			style = m.styles.IconSelected
			cv.Fill(r.X, r.Y, r.W, r.H, ' ', style)
		}
		cv.Region(r.X, r.Y, r.W, r.H).Text(1, 0, app.Glyph+" "+app.Title, style)
	}
}

// renderHelp draws the key help in the bottom-right corner of the desktop.
func (m Model) renderHelp(cv *canvas.Canvas) {
	lines := strings.Split(m.help.View(m.keys), "\n")
	bottom := m.height - 2
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimRight(lines[i], " ")
		y := bottom - (len(lines) - 1 - i)
		if y < 0 {
			break
		}
		cv.Text(max(0, m.width-runewidth.StringWidth(line)-1), y, line, m.styles.Desktop)
	}
}

func (m Model) renderWindow(cv *canvas.Canvas, w entity.Window) {
	r := m.grid.toCells(m.bounds(w))
	if r.W < 2 || r.H < 3 {
		return
	}

	border, title := m.styles.Border, m.styles.TitleBar
	if w.Focused {
		border, title = m.styles.BorderFocused, m.styles.TitleFocused
	}

	win := cv.Region(r.X, r.Y, r.W, r.H)
	win.Fill(' ', border)
	drawBox(win, border)

	bar := win.Sub(1, 1, r.W-2, 1)
	bar.Fill(' ', title)
	glyph := "□"
	if app, ok := entity.LookupApp(w.Kind); ok {
		glyph = app.Glyph
	}
	bar.Text(1, 0, glyph+" "+w.Title, title)

	maxGlyph := " □ "
	if w.Maximized {
		maxGlyph = " ❐ "
	}
	bx := bar.Width() - 9
	bar.Text(bx, 0, " ─ ", m.styles.Button)
	bar.Text(bx+3, 0, maxGlyph, m.styles.Button)
	bar.Text(bx+6, 0, " × ", m.styles.CloseButton)

	m.content(w).Render(win.Sub(1, 2, r.W-2, r.H-3), m.styles.Apps)
}

func drawBox(r *canvas.Region, s canvas.Style) {
	w, h := r.Width(), r.Height()
	for x := 1; x < w-1; x++ {
		r.Set(x, 0, '─', s)
		r.Set(x, h-1, '─', s)
	}
	for y := 1; y < h-1; y++ {
		r.Set(0, y, '│', s)
		r.Set(w-1, y, '│', s)
	}
	r.Set(0, 0, '┌', s)
	r.Set(w-1, 0, '┐', s)
	r.Set(0, h-1, '└', s)
	r.Set(w-1, h-1, '┘', s)
}

func (m Model) renderTaskbar(cv *canvas.Canvas) {
	y := m.height - 1
	cv.Fill(0, y, m.width, 1, ' ', m.styles.Taskbar)

	for _, item := range m.taskbarItems() {
		r := item.rect
		switch item.kind {
		case taskbarStart:
			style := m.styles.Taskbar
			if m.shell.StartMenuOpen() {
				style = m.styles.TaskbarFocused
			}
			cv.Fill(r.X, y, r.W, 1, ' ', style)
			cv.Text(r.X+1, y, "⊞ Start", style)
		case taskbarPinned:
			cv.Text(r.X+1, y, item.app.Glyph, m.styles.Taskbar)
		case taskbarWindow:
			style := m.styles.Taskbar
			switch {
			case item.entry.Focused:
				style = m.styles.TaskbarFocused
			case item.entry.Minimized:
				style = m.styles.TaskbarMinimized
			}
			label := runewidth.Truncate(item.entry.Glyph+" "+item.entry.Title, r.W-2, "…")
			cv.Fill(r.X, y, r.W, 1, ' ', style)
			cv.Text(r.X+1, y, label, style)
		}
	}

	clock := m.clockText()
	cv.Text(m.width-runewidth.StringWidth(clock), y, clock, m.styles.Clock)
}

func (m Model) renderStartMenu(cv *canvas.Canvas) {
	results := m.shell.SearchApps(m.search.Value())
	recs := m.shell.Recommended()
	l := layoutStartMenu(m.height-1, len(results), len(recs))

	menu := cv.Region(l.rect.X, l.rect.Y, l.rect.W, l.rect.H)
	menu.Fill(' ', m.styles.Menu)
	drawBox(menu, m.styles.MenuMuted)
	row := func(y int) int { return y - l.rect.Y }

	search := row(l.search)
	menu.Text(2, search, "⌕ ", m.styles.MenuHeader)
	if v := m.search.Value(); v != "" {
		n := menu.Text(4, search, v, m.styles.Menu)
		if m.search.Focused() {
			menu.Set(4+n, search, ' ', m.styles.MenuSelected)
		}
	} else {
		menu.Text(4, search, m.search.Placeholder, m.styles.MenuMuted)
	}

	menu.Text(2, search+2, "Pinned", m.styles.MenuHeader)
	for i, app := range results {
		r := l.apps[i]
		style := m.styles.Menu
		if i == m.menuCursor {
			style = m.styles.MenuSelected
		}
		menu.FillRect(r.X, row(r.Y), r.W, 1, ' ', style)
		menu.Text(r.X+2, row(r.Y), app.Glyph+"  "+app.Title, style)
	}

	recHeader := row(l.search) + 4 + len(results)
	menu.Text(2, recHeader, "Recommended", m.styles.MenuHeader)
	for i, rec := range recs {
		r := l.recs[i]
		menu.Text(r.X+2, row(r.Y), "▤  "+rec.Name, m.styles.Menu)
		menu.Text(r.X+r.W-1-runewidth.StringWidth(rec.When), row(r.Y), rec.When, m.styles.MenuMuted)
	}

	bottom := l.rect.H - 1
	menu.Text(2, bottom, " ◉ User ", m.styles.Menu)
	powerStyle := m.styles.Menu
	if m.shell.PowerMenuOpen() {
		powerStyle = m.styles.MenuSelected
	}
	menu.Text(l.power.X, bottom, " ⏻ ", powerStyle)

	if m.shell.PowerMenuOpen() {
		m.renderPowerMenu(cv, l)
	}
}

func (m Model) renderPowerMenu(cv *canvas.Canvas, l startMenuLayout) {
	cv.Fill(l.powerMenu.X, l.powerMenu.Y, l.powerMenu.W, l.powerMenu.H, ' ', m.styles.Menu)
	for i, action := range shell.PowerActions() {
		r := l.powerRows[i]
		style := m.styles.Menu
		if action == shell.PowerShutdown {
			style = m.styles.Danger
		}
		if i == m.powerCursor {
			style = m.styles.MenuSelected
		}
		cv.Fill(r.X, r.Y, r.W, 1, ' ', style)
		cv.Text(r.X+1, r.Y, action.Label(), style)
	}
}
