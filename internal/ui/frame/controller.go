package frame

import (
	"context"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/logging"
)

// Store is the part of the window store a frame needs.
type Store interface {
	Get(id entity.WindowID) (entity.Window, bool)
	Focus(ctx context.Context, id entity.WindowID) bool
	UpdatePosition(ctx context.Context, id entity.WindowID, pos entity.Point) bool
	UpdateSize(ctx context.Context, id entity.WindowID, size entity.Size) bool
}

// Mode is the gesture a controller is tracking.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrag
	ModeResize
)

// Controller turns pointer gestures on one window into store mutations.
// A gesture is tracked from Begin* until End, or until the window disappears.
type Controller struct {
	id          entity.WindowID
	store       Store
	constraints Constraints

	mode      Mode
	direction entity.ResizeDirection
	offset    entity.Point // Pointer offset from the top-left, for drags
	start     entity.Point // Pointer position at gesture start, for resizes
	startPos  entity.Point
	startSize entity.Size
}

// NewController creates an idle controller for window id.
func NewController(store Store, id entity.WindowID, constraints Constraints) *Controller {
	return &Controller{
		id:          id,
		store:       store,
		constraints: constraints,
	}
}

// WindowID returns the window this controller drives.
func (c *Controller) WindowID() entity.WindowID { return c.id }

// Mode returns the active gesture.
func (c *Controller) Mode() Mode { return c.mode }

// Direction returns the handle of the active resize.
func (c *Controller) Direction() entity.ResizeDirection { return c.direction }

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.mode != ModeIdle }

// BeginDrag focuses the window and starts tracking a title bar drag.
func (c *Controller) BeginDrag(ctx context.Context, pointer entity.Point) bool {
	w, ok := c.begin(ctx)
	if !ok {
		return false
	}
	c.mode = ModeDrag
	c.offset = entity.Point{X: pointer.X - w.Position.X, Y: pointer.Y - w.Position.Y}
	logging.FromContext(ctx).Debug().
		Str("window_id", string(c.id)).
		Int("offset_x", c.offset.X).
		Int("offset_y", c.offset.Y).
		Msg("drag started")
	return true
}

// BeginResize focuses the window and starts tracking a resize from handle dir.
func (c *Controller) BeginResize(ctx context.Context, dir entity.ResizeDirection, pointer entity.Point) bool {
	if dir == entity.ResizeNone {
		return false
	}
	w, ok := c.begin(ctx)
	if !ok {
		return false
	}
	c.mode = ModeResize
	c.direction = dir
	c.start = pointer
	c.startPos = w.Position
	c.startSize = w.Size
	logging.FromContext(ctx).Debug().
		Str("window_id", string(c.id)).
		Str("direction", dir.String()).
		Msg("resize started")
	return true
}

// Move applies pointer motion to the active gesture. Maximized windows are
// never moved or resized. It reports whether the store was updated.
func (c *Controller) Move(ctx context.Context, pointer entity.Point, viewport entity.Size) bool {
	if c.mode == ModeIdle {
		return false
	}
	w, ok := c.store.Get(c.id)
	if !ok {
		c.End()
		return false
	}
	if w.Maximized {
		return false
	}

	switch c.mode {
	case ModeDrag:
		target := entity.Point{X: pointer.X - c.offset.X, Y: pointer.Y - c.offset.Y}
		return c.store.UpdatePosition(ctx, c.id, ClampDrag(target, viewport, c.constraints))
	case ModeResize:
		delta := entity.Point{X: pointer.X - c.start.X, Y: pointer.Y - c.start.Y}
		pos, size := ApplyResize(c.direction, c.startPos, c.startSize, delta, c.constraints)
		updated := c.store.UpdateSize(ctx, c.id, size)
		if pos != w.Position {
			updated = c.store.UpdatePosition(ctx, c.id, pos) || updated
		}
		return updated
	}
	return false
}

// End stops tracking. Calling it while idle is a no-op.
func (c *Controller) End() {
	c.mode = ModeIdle
	c.direction = entity.ResizeNone
}

func (c *Controller) begin(ctx context.Context) (entity.Window, bool) {
	c.End()
	if !c.store.Focus(ctx, c.id) {
		return entity.Window{}, false
	}
	return c.store.Get(c.id)
}
