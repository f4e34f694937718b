package canvas

import "github.com/mattn/go-runewidth"

// Region is a rectangular window onto a canvas. Coordinates are relative to
// the region and writes are clipped to it.
type Region struct {
	canvas *Canvas
	x, y   int
	w, h   int
}

// Width returns the region width in columns.
func (r *Region) Width() int { return r.w }

// Height returns the region height in rows.
func (r *Region) Height() int { return r.h }

// Set writes a rune inside the region.
func (r *Region) Set(x, y int, ch rune, s Style) int {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return 1
	}
	return r.canvas.set(r.x+x, r.y+y, ch, s, r.x+r.w)
}

// Text writes s on row y, clipped at the region's right edge.
func (r *Region) Text(x, y int, s string, st Style) int {
	if y < 0 || y >= r.h || x >= r.w {
		return 0
	}
	if x < 0 {
		s, x = skipColumns(s, -x), 0
	}
	return r.canvas.text(r.x+x, r.y+y, s, st, r.x+r.w)
}

// Fill paints the whole region.
func (r *Region) Fill(ch rune, s Style) {
	r.FillRect(0, 0, r.w, r.h, ch, s)
}

// FillRect paints part of the region.
func (r *Region) FillRect(x, y, w, h int, ch rune, s Style) {
	for row := max(0, y); row < min(r.h, y+h); row++ {
		for col := max(0, x); col < min(r.w, x+w); col++ {
			r.canvas.set(r.x+col, r.y+row, ch, s, r.x+r.w)
		}
	}
}

// Sub returns a region nested inside r, clipped to it.
func (r *Region) Sub(x, y, w, h int) *Region {
	x0, y0 := max(0, x), max(0, y)
	x1, y1 := min(r.w, x+w), min(r.h, y+h)
	return &Region{canvas: r.canvas, x: r.x + x0, y: r.y + y0, w: max(0, x1-x0), h: max(0, y1-y0)}
}

func skipColumns(s string, n int) string {
	for i, ch := range s {
		if n <= 0 {
			return s[i:]
		}
		n -= max(1, runewidth.RuneWidth(ch))
	}
	return ""
}
