package entity

import (
	"errors"
	"fmt"
)

// ErrUnknownResizeDirection is returned when a direction name is not recognized.
var ErrUnknownResizeDirection = errors.New("unknown resize direction")

// Rect is an axis-aligned rectangle in viewport pixels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ResizeDirection tags one of the eight resize handles of a window frame.
type ResizeDirection int

const (
	ResizeNone ResizeDirection = iota
	ResizeTop
	ResizeBottom
	ResizeLeft
	ResizeRight
	ResizeTopLeft
	ResizeTopRight
	ResizeBottomLeft
	ResizeBottomRight
)

var resizeDirectionNames = map[ResizeDirection]string{
	ResizeNone:        "none",
	ResizeTop:         "top",
	ResizeBottom:      "bottom",
	ResizeLeft:        "left",
	ResizeRight:       "right",
	ResizeTopLeft:     "top-left",
	ResizeTopRight:    "top-right",
	ResizeBottomLeft:  "bottom-left",
	ResizeBottomRight: "bottom-right",
}

// String returns the handle name.
func (d ResizeDirection) String() string {
	if name, ok := resizeDirectionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("ResizeDirection(%d)", int(d))
}

// ParseResizeDirection maps a handle name ("top-left", "right", ...) to its direction.
func ParseResizeDirection(s string) (ResizeDirection, error) {
	for d, name := range resizeDirectionNames {
		if d != ResizeNone && name == s {
			return d, nil
		}
	}
	return ResizeNone, fmt.Errorf("%w: %q", ErrUnknownResizeDirection, s)
}

// MovesLeftEdge reports whether the handle drags the left edge.
func (d ResizeDirection) MovesLeftEdge() bool {
	return d == ResizeLeft || d == ResizeTopLeft || d == ResizeBottomLeft
}

// MovesRightEdge reports whether the handle drags the right edge.
func (d ResizeDirection) MovesRightEdge() bool {
	return d == ResizeRight || d == ResizeTopRight || d == ResizeBottomRight
}

// MovesTopEdge reports whether the handle drags the top edge.
func (d ResizeDirection) MovesTopEdge() bool {
	return d == ResizeTop || d == ResizeTopLeft || d == ResizeTopRight
}

// MovesBottomEdge reports whether the handle drags the bottom edge.
func (d ResizeDirection) MovesBottomEdge() bool {
	return d == ResizeBottom || d == ResizeBottomLeft || d == ResizeBottomRight
}
