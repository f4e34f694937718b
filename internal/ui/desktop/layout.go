package desktop

import (
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/ui/frame"
	"github.com/bnema/dumbtop/internal/ui/shell"
)

// cellRect is a rectangle in terminal cells.
type cellRect struct {
	X, Y, W, H int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// grid converts between terminal cells and desktop pixels.
type grid struct {
	cellW, cellH int
}

func (g grid) toPixel(x, y int) entity.Point {
	return entity.Point{X: x * g.cellW, Y: y * g.cellH}
}

// toCells snaps a pixel rectangle onto the cells it covers.
func (g grid) toCells(r entity.Rect) cellRect {
	x0, y0 := floorDiv(r.X, g.cellW), floorDiv(r.Y, g.cellH)
	x1, y1 := floorDiv(r.Right(), g.cellW), floorDiv(r.Bottom(), g.cellH)
	return cellRect{X: x0, Y: y0, W: max(0, x1-x0), H: max(0, y1-y0)}
}

// snap returns the pixel rectangle of the cells r is drawn on, so hit tests
// agree with what is on screen.
func (g grid) snap(r entity.Rect) entity.Rect {
	c := g.toCells(r)
	return entity.Rect{X: c.X * g.cellW, Y: c.Y * g.cellH, W: c.W * g.cellW, H: c.H * g.cellH}
}

// chrome is one cell of border all around, a one-row title bar and
// three-cell title buttons.
func (g grid) chrome() frame.Chrome {
	return frame.Chrome{
		Border:         entity.Size{Width: g.cellW, Height: g.cellH},
		TitleBarHeight: g.cellH,
		ButtonWidth:    3 * g.cellW,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

const (
	iconColumn = 1
	iconWidth  = 18
	iconTop    = 1
	iconStride = 2

	startButtonWidth = 9
	pinnedSlot       = 3
	entryMaxWidth    = 20

	startMenuWidth = 44
	powerMenuWidth = 14
)

func iconRect(i int) cellRect {
	return cellRect{X: iconColumn, Y: iconTop + i*iconStride, W: iconWidth, H: 1}
}

type taskbarItemKind int

const (
	taskbarStart taskbarItemKind = iota
	taskbarPinned
	taskbarWindow
)

type taskbarItem struct {
	kind  taskbarItemKind
	rect  cellRect
	app   entity.App
	entry shell.TaskbarEntry
}

// taskbarLayout places the start button, the pinned apps and one button per
// window on row y. Window buttons that do not fit before the clock are dropped.
func taskbarLayout(width, y int, pinned []entity.App, entries []shell.TaskbarEntry, clockWidth int) []taskbarItem {
	items := []taskbarItem{{kind: taskbarStart, rect: cellRect{X: 0, Y: y, W: startButtonWidth, H: 1}}}

	x := startButtonWidth + 1
	for _, app := range pinned {
		items = append(items, taskbarItem{kind: taskbarPinned, rect: cellRect{X: x, Y: y, W: pinnedSlot, H: 1}, app: app})
		x += pinnedSlot
	}
	x += 2

	limit := width - clockWidth - 1
	for _, e := range entries {
		w := min(entryMaxWidth, limit-x)
		if w < 6 {
			break
		}
		items = append(items, taskbarItem{kind: taskbarWindow, rect: cellRect{X: x, Y: y, W: w, H: 1}, entry: e})
		x += w + 1
	}
	return items
}

type startMenuLayout struct {
	rect      cellRect
	search    int // Row of the search field
	apps      []cellRect
	recs      []cellRect
	power     cellRect
	powerMenu cellRect
	powerRows []cellRect
}

// layoutStartMenu anchors the start menu to the bottom-left of a desktop
// area of the given height. The power menu opens to its right.
func layoutStartMenu(height, apps, recs int) startMenuLayout {
	h := apps + recs + 8
	top := max(0, height-h)
	l := startMenuLayout{rect: cellRect{X: 0, Y: top, W: startMenuWidth, H: h}}

	y := top + 1
	l.search = y
	y += 2 // Blank, then the "Pinned" header
	y++
	for i := 0; i < apps; i++ {
		l.apps = append(l.apps, cellRect{X: 1, Y: y, W: startMenuWidth - 2, H: 1})
		y++
	}
	y += 2 // Blank, then the "Recommended" header
	for i := 0; i < recs; i++ {
		l.recs = append(l.recs, cellRect{X: 1, Y: y, W: startMenuWidth - 2, H: 1})
		y++
	}

	bottom := top + h - 1
	l.power = cellRect{X: startMenuWidth - 4, Y: bottom, W: 3, H: 1}

	actions := len(shell.PowerActions())
	l.powerMenu = cellRect{X: startMenuWidth, Y: max(0, bottom-actions+1), W: powerMenuWidth, H: actions}
	for i := 0; i < actions; i++ {
		l.powerRows = append(l.powerRows, cellRect{X: l.powerMenu.X, Y: l.powerMenu.Y + i, W: powerMenuWidth, H: 1})
	}
	return l
}
