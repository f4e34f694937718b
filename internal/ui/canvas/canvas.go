// Package canvas is a small cell grid the desktop composes windows onto
// before turning it into one styled string per frame.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Style is the look of one cell.
type Style struct {
	Fg      lipgloss.Color
	Bg      lipgloss.Color
	Bold    bool
	Reverse bool
}

// WithFg returns s with a different foreground.
func (s Style) WithFg(fg lipgloss.Color) Style {
	s.Fg = fg
	return s
}

// WithBg returns s with a different background.
func (s Style) WithBg(bg lipgloss.Color) Style {
	s.Bg = bg
	return s
}

// Bolded returns s in bold.
func (s Style) Bolded() Style {
	s.Bold = true
	return s
}

func (s Style) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bg != "" {
		st = st.Background(s.Bg)
	}
	return st.Bold(s.Bold).Reverse(s.Reverse)
}

// Cell is one terminal cell. Wide runes occupy their cell plus a
// continuation cell that renders nothing.
type Cell struct {
	Rune  rune
	Style Style
	cont  bool
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// New creates a canvas filled with spaces in the given style.
func New(width, height int, fill Style) *Canvas {
	width = max(0, width)
	height = max(0, height)
	c := &Canvas{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Style: fill}
	}
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// At returns the cell at x,y. Out of range coordinates yield a zero cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Set writes a rune and returns the number of columns it took.
// A wide rune that does not fit before the right edge is replaced by a space.
func (c *Canvas) Set(x, y int, r rune, s Style) int {
	return c.set(x, y, r, s, c.width)
}

func (c *Canvas) set(x, y int, r rune, s Style, limit int) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if !c.inside(x, y) {
		return w
	}
	if w == 2 && x+1 >= min(limit, c.width) {
		r, w = ' ', 1
	}
	c.clearWide(x, y)
	c.cells[y*c.width+x] = Cell{Rune: r, Style: s}
	if w == 2 {
		c.clearWide(x+1, y)
		c.cells[y*c.width+x+1] = Cell{Style: s, cont: true}
	}
	return w
}

// clearWide blanks the other half of a wide rune about to be overwritten.
func (c *Canvas) clearWide(x, y int) {
	cell := c.cells[y*c.width+x]
	if cell.cont && x > 0 {
		left := &c.cells[y*c.width+x-1]
		left.Rune = ' '
	} else if !cell.cont && x+1 < c.width && c.cells[y*c.width+x+1].cont {
		right := &c.cells[y*c.width+x+1]
		right.Rune, right.cont = ' ', false
	}
}

// Text writes s starting at x,y without wrapping and returns the columns used.
func (c *Canvas) Text(x, y int, s string, st Style) int {
	return c.text(x, y, s, st, c.width)
}

func (c *Canvas) text(x, y int, s string, st Style, limit int) int {
	col := x
	for _, r := range s {
		if col >= limit {
			break
		}
		col += c.set(col, y, r, st, limit)
	}
	return col - x
}

// Fill paints a rectangle with r.
func (c *Canvas) Fill(x, y, w, h int, r rune, s Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.Set(col, row, r, s)
		}
	}
}

// Region returns a clipped view onto part of the canvas.
func (c *Canvas) Region(x, y, w, h int) *Region {
	return &Region{canvas: c, x: x, y: y, w: max(0, w), h: max(0, h)}
}

// Lines renders the canvas as one styled string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	var b, run strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		run.Reset()
		var current Style
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.cont {
				continue
			}
			if x > 0 && cell.Style != current && run.Len() > 0 {
				b.WriteString(current.lipgloss().Render(run.String()))
				run.Reset()
			}
			current = cell.Style
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			b.WriteString(current.lipgloss().Render(run.String()))
		}
		lines[y] = b.String()
	}
	return lines
}

// Render returns the whole canvas as a string.
func (c *Canvas) Render() string {
	return strings.Join(c.Lines(), "\n")
}

// PlainLines returns the canvas text without styling.
func (c *Canvas) PlainLines() []string {
	lines := make([]string, c.height)
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if !cell.cont {
				b.WriteRune(cell.Rune)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}
