package frame

import "github.com/bnema/dumbtop/internal/domain/entity"

// Region classifies where a pointer press landed on a window.
type Region int

const (
	RegionNone Region = iota // Outside the window
	RegionContent
	RegionTitleBar
	RegionMinimize
	RegionMaximize
	RegionClose
	RegionResize
)

func (r Region) String() string {
	switch r {
	case RegionContent:
		return "content"
	case RegionTitleBar:
		return "title-bar"
	case RegionMinimize:
		return "minimize"
	case RegionMaximize:
		return "maximize"
	case RegionClose:
		return "close"
	case RegionResize:
		return "resize"
	default:
		return "none"
	}
}

// Hit is the result of a hit test. Direction is set only for RegionResize.
type Hit struct {
	Region    Region
	Direction entity.ResizeDirection
}

// Chrome describes the frame decoration, in pixels.
// The border doubles as the resize handles; the title bar sits just inside it.
type Chrome struct {
	Border         entity.Size // Thickness of the left/right (Width) and top/bottom (Height) border
	TitleBarHeight int
	ButtonWidth    int // Width of each of the three title bar buttons
}

// ContentRect returns the area left for app content inside bounds.
func (c Chrome) ContentRect(bounds entity.Rect) entity.Rect {
	r := entity.Rect{
		X: bounds.X + c.Border.Width,
		Y: bounds.Y + c.Border.Height + c.TitleBarHeight,
		W: bounds.W - 2*c.Border.Width,
		H: bounds.H - 2*c.Border.Height - c.TitleBarHeight,
	}
	r.W = max(0, r.W)
	r.H = max(0, r.H)
	return r
}

// TitleBarRect returns the title bar area inside bounds.
func (c Chrome) TitleBarRect(bounds entity.Rect) entity.Rect {
	return entity.Rect{
		X: bounds.X + c.Border.Width,
		Y: bounds.Y + c.Border.Height,
		W: max(0, bounds.W-2*c.Border.Width),
		H: c.TitleBarHeight,
	}
}

// ButtonRect returns the rectangle of a title bar button, laid out right to
// left as close, maximize, minimize.
func (c Chrome) ButtonRect(bounds entity.Rect, button Region) entity.Rect {
	bar := c.TitleBarRect(bounds)
	slot := 0
	switch button {
	case RegionClose:
		slot = 1
	case RegionMaximize:
		slot = 2
	case RegionMinimize:
		slot = 3
	default:
		return entity.Rect{}
	}
	return entity.Rect{X: bar.Right() - slot*c.ButtonWidth, Y: bar.Y, W: c.ButtonWidth, H: bar.H}
}

// HitTest classifies p against a window occupying bounds. Resize handles do
// not exist while the window is maximized; corners win over edges.
func HitTest(bounds entity.Rect, p entity.Point, maximized bool, c Chrome) Hit {
	if !bounds.Contains(p) {
		return Hit{Region: RegionNone}
	}

	if !maximized {
		if dir := handleAt(bounds, p, c); dir != entity.ResizeNone {
			return Hit{Region: RegionResize, Direction: dir}
		}
	}

	if c.TitleBarRect(bounds).Contains(p) {
		for _, button := range []Region{RegionClose, RegionMaximize, RegionMinimize} {
			if c.ButtonRect(bounds, button).Contains(p) {
				return Hit{Region: button}
			}
		}
		return Hit{Region: RegionTitleBar}
	}

	return Hit{Region: RegionContent}
}

func handleAt(bounds entity.Rect, p entity.Point, c Chrome) entity.ResizeDirection {
	left := p.X < bounds.X+c.Border.Width
	right := p.X >= bounds.Right()-c.Border.Width
	top := p.Y < bounds.Y+c.Border.Height
	bottom := p.Y >= bounds.Bottom()-c.Border.Height

	switch {
	case top && left:
		return entity.ResizeTopLeft
	case top && right:
		return entity.ResizeTopRight
	case bottom && left:
		return entity.ResizeBottomLeft
	case bottom && right:
		return entity.ResizeBottomRight
	case top:
		return entity.ResizeTop
	case bottom:
		return entity.ResizeBottom
	case left:
		return entity.ResizeLeft
	case right:
		return entity.ResizeRight
	default:
		return entity.ResizeNone
	}
}
