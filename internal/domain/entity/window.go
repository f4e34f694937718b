// Package entity contains domain entities representing core desktop concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"cmp"
	"slices"
)

// WindowID uniquely identifies an open window for its whole lifetime.
type WindowID string

// Point is a coordinate in viewport pixels.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Size holds pixel dimensions.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Window is the authoritative record for one open application instance.
// Position and Size keep the restore geometry while Maximized is set.
type Window struct {
	ID         WindowID `json:"id" yaml:"id"`
	Kind       AppKind  `json:"kind" yaml:"kind"`
	Title      string   `json:"title" yaml:"title"`
	Position   Point    `json:"position" yaml:"position"`
	Size       Size     `json:"size" yaml:"size"`
	StackOrder int      `json:"stack_order" yaml:"stack_order"`
	Minimized  bool     `json:"minimized" yaml:"minimized"`
	Maximized  bool     `json:"maximized" yaml:"maximized"`
	Focused    bool     `json:"focused" yaml:"focused"`
}

// Rect returns the stored (restore) geometry of the window.
func (w Window) Rect() Rect {
	return Rect{X: w.Position.X, Y: w.Position.Y, W: w.Size.Width, H: w.Size.Height}
}

// Visible reports whether the window produces any output.
func (w Window) Visible() bool {
	return !w.Minimized
}

// WindowList is an ordered collection of window records in opening order.
// It is treated as immutable once published.
type WindowList []Window

// Index returns the position of the window with the given id, or -1.
func (l WindowList) Index(id WindowID) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the window with the given id.
func (l WindowList) Find(id WindowID) (Window, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Window{}, false
}

// MaxStackOrder returns the highest stack order, or 0 for an empty list.
func (l WindowList) MaxStackOrder() int {
	highest := 0
	for i := range l {
		if i == 0 || l[i].StackOrder > highest {
			highest = l[i].StackOrder
		}
	}
	return highest
}

// Focused returns the focused window, if any.
func (l WindowList) Focused() (Window, bool) {
	for i := range l {
		if l[i].Focused {
			return l[i], true
		}
	}
	return Window{}, false
}

// ByStackOrder returns a copy sorted back to front.
// Equal stack orders keep their opening order.
func (l WindowList) ByStackOrder() WindowList {
	sorted := slices.Clone(l)
	slices.SortStableFunc(sorted, func(a, b Window) int {
		return cmp.Compare(a.StackOrder, b.StackOrder)
	})
	return sorted
}

// VisibleByStackOrder returns the non-minimized windows back to front.
func (l WindowList) VisibleByStackOrder() WindowList {
	sorted := l.ByStackOrder()
	visible := sorted[:0]
	for _, w := range sorted {
		if w.Visible() {
			visible = append(visible, w)
		}
	}
	return visible
}

// Topmost returns the frontmost visible window containing p, given the
// bounds function used to resolve maximized geometry.
func (l WindowList) Topmost(p Point, bounds func(Window) Rect) (Window, bool) {
	visible := l.VisibleByStackOrder()
	for i := len(visible) - 1; i >= 0; i-- {
		if bounds(visible[i]).Contains(p) {
			return visible[i], true
		}
	}
	return Window{}, false
}

// Snapshot is an immutable view of the window collection at one revision.
type Snapshot struct {
	Revision uint64
	Windows  WindowList
}
