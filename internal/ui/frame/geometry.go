// Package frame holds the window frame logic: geometry resolution, drag and
// resize rules, hit testing of the chrome, and per-window gesture tracking.
// It knows nothing about how windows are drawn.
package frame

import "github.com/bnema/dumbtop/internal/domain/entity"

// Constraints bound what gestures may do to a window.
type Constraints struct {
	MinWidth       int // Hard floor for resize
	MinHeight      int
	VisibleMarginX int // Pixels that must stay reachable from the right/bottom edge of the viewport
	VisibleMarginY int
}

// DefaultConstraints returns a 320x240 floor and a 100x50 visible sliver.
func DefaultConstraints() Constraints {
	return Constraints{
		MinWidth:       320,
		MinHeight:      240,
		VisibleMarginX: 100,
		VisibleMarginY: 50,
	}
}

// Bounds resolves where a window is shown: the whole viewport while
// maximized, its stored geometry otherwise.
func Bounds(w entity.Window, viewport entity.Size) entity.Rect {
	if w.Maximized {
		return entity.Rect{W: viewport.Width, H: viewport.Height}
	}
	return w.Rect()
}

// ClampDrag clamps a proposed top-left so that part of the window stays on screen.
// The lower bound wins when the viewport is smaller than the margin.
func ClampDrag(topLeft entity.Point, viewport entity.Size, c Constraints) entity.Point {
	return entity.Point{
		X: clamp(topLeft.X, 0, viewport.Width-c.VisibleMarginX),
		Y: clamp(topLeft.Y, 0, viewport.Height-c.VisibleMarginY),
	}
}

// ApplyResize computes the geometry produced by dragging handle dir by delta
// from the gesture's starting geometry. Handles on the left or top edge keep
// the opposite edge anchored until the position would go negative.
func ApplyResize(
	dir entity.ResizeDirection,
	startPos entity.Point,
	startSize entity.Size,
	delta entity.Point,
	c Constraints,
) (entity.Point, entity.Size) {
	pos, size := startPos, startSize

	switch {
	case dir.MovesRightEdge():
		size.Width = max(c.MinWidth, startSize.Width+delta.X)
	case dir.MovesLeftEdge():
		size.Width = max(c.MinWidth, startSize.Width-delta.X)
		pos.X = max(0, startPos.X+startSize.Width-size.Width)
	}

	switch {
	case dir.MovesBottomEdge():
		size.Height = max(c.MinHeight, startSize.Height+delta.Y)
	case dir.MovesTopEdge():
		size.Height = max(c.MinHeight, startSize.Height-delta.Y)
		pos.Y = max(0, startPos.Y+startSize.Height-size.Height)
	}

	return pos, size
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
