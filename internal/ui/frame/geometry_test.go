package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbtop/internal/domain/entity"
)

func TestClampDrag(t *testing.T) {
	viewport := entity.Size{Width: 1920, Height: 1080}
	c := DefaultConstraints()

	tests := []struct {
		name string
		in   entity.Point
		want entity.Point
	}{
		{name: "inside", in: entity.Point{X: 300, Y: 200}, want: entity.Point{X: 300, Y: 200}},
		{name: "off left", in: entity.Point{X: -30, Y: 10}, want: entity.Point{X: 0, Y: 10}},
		{name: "off right", in: entity.Point{X: 1920, Y: 10}, want: entity.Point{X: 1820, Y: 10}},
		{name: "off top", in: entity.Point{X: 10, Y: -5}, want: entity.Point{X: 10, Y: 0}},
		{name: "off bottom", in: entity.Point{X: 10, Y: 2000}, want: entity.Point{X: 10, Y: 1030}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampDrag(tt.in, viewport, c))
		})
	}
}

func TestClampDrag_TinyViewportPrefersOrigin(t *testing.T) {
	got := ClampDrag(entity.Point{X: 40, Y: 40}, entity.Size{Width: 60, Height: 30}, DefaultConstraints())
	assert.Equal(t, entity.Point{X: 0, Y: 0}, got)
}

func TestApplyResize(t *testing.T) {
	c := DefaultConstraints()
	startPos := entity.Point{X: 100, Y: 100}
	startSize := entity.Size{Width: 400, Height: 300}

	tests := []struct {
		name     string
		dir      entity.ResizeDirection
		delta    entity.Point
		wantPos  entity.Point
		wantSize entity.Size
	}{
		{
			name:     "left grows",
			dir:      entity.ResizeLeft,
			delta:    entity.Point{X: -50},
			wantPos:  entity.Point{X: 50, Y: 100},
			wantSize: entity.Size{Width: 450, Height: 300},
		},
		{
			name:     "left hits floor and keeps right edge",
			dir:      entity.ResizeLeft,
			delta:    entity.Point{X: 200},
			wantPos:  entity.Point{X: 180, Y: 100},
			wantSize: entity.Size{Width: 320, Height: 300},
		},
		{
			name:     "left stops at viewport edge",
			dir:      entity.ResizeLeft,
			delta:    entity.Point{X: -150},
			wantPos:  entity.Point{X: 0, Y: 100},
			wantSize: entity.Size{Width: 550, Height: 300},
		},
		{
			name:     "right",
			dir:      entity.ResizeRight,
			delta:    entity.Point{X: 25, Y: 99},
			wantPos:  startPos,
			wantSize: entity.Size{Width: 425, Height: 300},
		},
		{
			name:     "right floor",
			dir:      entity.ResizeRight,
			delta:    entity.Point{X: -500},
			wantPos:  startPos,
			wantSize: entity.Size{Width: 320, Height: 300},
		},
		{
			name:     "bottom floor",
			dir:      entity.ResizeBottom,
			delta:    entity.Point{Y: -200},
			wantPos:  startPos,
			wantSize: entity.Size{Width: 400, Height: 240},
		},
		{
			name:     "top grows",
			dir:      entity.ResizeTop,
			delta:    entity.Point{Y: -40},
			wantPos:  entity.Point{X: 100, Y: 60},
			wantSize: entity.Size{Width: 400, Height: 340},
		},
		{
			name:     "bottom right combines edges",
			dir:      entity.ResizeBottomRight,
			delta:    entity.Point{X: 10, Y: 20},
			wantPos:  startPos,
			wantSize: entity.Size{Width: 410, Height: 320},
		},
		{
			name:     "top left combines edges",
			dir:      entity.ResizeTopLeft,
			delta:    entity.Point{X: -10, Y: 100},
			wantPos:  entity.Point{X: 90, Y: 160},
			wantSize: entity.Size{Width: 410, Height: 240},
		},
		{
			name:     "top right",
			dir:      entity.ResizeTopRight,
			delta:    entity.Point{X: 30, Y: -30},
			wantPos:  entity.Point{X: 100, Y: 70},
			wantSize: entity.Size{Width: 430, Height: 330},
		},
		{
			name:     "bottom left",
			dir:      entity.ResizeBottomLeft,
			delta:    entity.Point{X: 30, Y: 30},
			wantPos:  entity.Point{X: 130, Y: 100},
			wantSize: entity.Size{Width: 370, Height: 330},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, size := ApplyResize(tt.dir, startPos, startSize, tt.delta, c)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestBounds(t *testing.T) {
	viewport := entity.Size{Width: 1024, Height: 768}
	w := entity.Window{Position: entity.Point{X: 5, Y: 6}, Size: entity.Size{Width: 400, Height: 300}}

	assert.Equal(t, entity.Rect{X: 5, Y: 6, W: 400, H: 300}, Bounds(w, viewport))

	w.Maximized = true
	assert.Equal(t, entity.Rect{W: 1024, H: 768}, Bounds(w, viewport))
}
