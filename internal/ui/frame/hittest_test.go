package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbtop/internal/domain/entity"
)

func testChrome() Chrome {
	return Chrome{
		Border:         entity.Size{Width: 8, Height: 16},
		TitleBarHeight: 16,
		ButtonWidth:    24,
	}
}

func TestHitTest(t *testing.T) {
	bounds := entity.Rect{X: 100, Y: 100, W: 400, H: 300}

	tests := []struct {
		name string
		p    entity.Point
		want Hit
	}{
		{name: "outside", p: entity.Point{X: 50, Y: 50}, want: Hit{Region: RegionNone}},
		{name: "top left corner", p: entity.Point{X: 100, Y: 100}, want: Hit{Region: RegionResize, Direction: entity.ResizeTopLeft}},
		{name: "top right corner", p: entity.Point{X: 495, Y: 105}, want: Hit{Region: RegionResize, Direction: entity.ResizeTopRight}},
		{name: "bottom left corner", p: entity.Point{X: 101, Y: 390}, want: Hit{Region: RegionResize, Direction: entity.ResizeBottomLeft}},
		{name: "bottom right corner", p: entity.Point{X: 496, Y: 399}, want: Hit{Region: RegionResize, Direction: entity.ResizeBottomRight}},
		{name: "top edge", p: entity.Point{X: 300, Y: 100}, want: Hit{Region: RegionResize, Direction: entity.ResizeTop}},
		{name: "bottom edge", p: entity.Point{X: 300, Y: 384}, want: Hit{Region: RegionResize, Direction: entity.ResizeBottom}},
		{name: "left edge", p: entity.Point{X: 100, Y: 200}, want: Hit{Region: RegionResize, Direction: entity.ResizeLeft}},
		{name: "right edge", p: entity.Point{X: 492, Y: 200}, want: Hit{Region: RegionResize, Direction: entity.ResizeRight}},
		{name: "close button", p: entity.Point{X: 480, Y: 120}, want: Hit{Region: RegionClose}},
		{name: "maximize button", p: entity.Point{X: 450, Y: 120}, want: Hit{Region: RegionMaximize}},
		{name: "minimize button", p: entity.Point{X: 430, Y: 120}, want: Hit{Region: RegionMinimize}},
		{name: "title bar", p: entity.Point{X: 200, Y: 116}, want: Hit{Region: RegionTitleBar}},
		{name: "content", p: entity.Point{X: 200, Y: 200}, want: Hit{Region: RegionContent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HitTest(bounds, tt.p, false, testChrome()))
		})
	}
}

func TestHitTest_MaximizedHasNoHandles(t *testing.T) {
	bounds := entity.Rect{W: 1024, H: 768}

	for _, p := range []entity.Point{{X: 0, Y: 0}, {X: 1023, Y: 767}, {X: 0, Y: 400}, {X: 500, Y: 767}} {
		hit := HitTest(bounds, p, true, testChrome())
		assert.NotEqual(t, RegionResize, hit.Region, "point %+v", p)
	}

	assert.Equal(t, RegionTitleBar, HitTest(bounds, entity.Point{X: 300, Y: 20}, true, testChrome()).Region)
	assert.Equal(t, RegionClose, HitTest(bounds, entity.Point{X: 1000, Y: 20}, true, testChrome()).Region)
}

func TestChrome_ContentRect(t *testing.T) {
	c := testChrome()

	assert.Equal(t,
		entity.Rect{X: 108, Y: 132, W: 384, H: 252},
		c.ContentRect(entity.Rect{X: 100, Y: 100, W: 400, H: 300}),
	)
	assert.Equal(t, entity.Rect{X: 8, Y: 32, W: 0, H: 0}, c.ContentRect(entity.Rect{W: 10, H: 10}))
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "title-bar", RegionTitleBar.String())
	assert.Equal(t, "none", Region(99).String())
}
