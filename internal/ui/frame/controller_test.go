package frame

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtop/internal/application/usecase"
	"github.com/bnema/dumbtop/internal/domain/entity"
)

var viewport = entity.Size{Width: 1920, Height: 1080}

func newStoreWithWindows(t *testing.T, n int) (*usecase.WindowStore, []entity.WindowID) {
	t.Helper()
	i := 0
	store := usecase.NewWindowStore(func() string {
		i++
		return string(rune('a' + i - 1))
	}, usecase.DefaultWindowDefaults())

	ids := make([]entity.WindowID, 0, n)
	for range n {
		ids = append(ids, store.Open(context.Background(), entity.AppNotepad, "Notepad"))
	}
	return store, ids
}

func TestController_DragFocusesAndClamps(t *testing.T) {
	ctx := context.Background()
	store, ids := newStoreWithWindows(t, 2)
	first := ids[0]

	c := NewController(store, first, DefaultConstraints())
	require.True(t, c.BeginDrag(ctx, entity.Point{X: 150, Y: 110}))
	assert.Equal(t, ModeDrag, c.Mode())

	w, _ := store.Get(first)
	assert.True(t, w.Focused, "gesture start focuses the window")

	c.Move(ctx, entity.Point{X: 250, Y: 310}, viewport)
	w, _ = store.Get(first)
	assert.Equal(t, entity.Point{X: 200, Y: 300}, w.Position)

	c.Move(ctx, entity.Point{X: 20, Y: 5}, viewport)
	w, _ = store.Get(first)
	assert.Equal(t, entity.Point{X: 0, Y: 0}, w.Position)

	c.Move(ctx, entity.Point{X: 5000, Y: 5000}, viewport)
	w, _ = store.Get(first)
	assert.Equal(t, entity.Point{X: 1820, Y: 1030}, w.Position)

	c.End()
	assert.False(t, c.Active())
	assert.False(t, c.Move(ctx, entity.Point{X: 300, Y: 300}, viewport))
}

func TestController_MaximizedDoesNotMove(t *testing.T) {
	ctx := context.Background()
	store, ids := newStoreWithWindows(t, 1)
	id := ids[0]
	store.Maximize(ctx, id)

	c := NewController(store, id, DefaultConstraints())
	require.True(t, c.BeginDrag(ctx, entity.Point{X: 120, Y: 120}))
	assert.False(t, c.Move(ctx, entity.Point{X: 600, Y: 600}, viewport))

	require.True(t, c.BeginResize(ctx, entity.ResizeRight, entity.Point{X: 900, Y: 300}))
	assert.False(t, c.Move(ctx, entity.Point{X: 1000, Y: 300}, viewport))

	w, _ := store.Get(id)
	assert.Equal(t, entity.Point{X: 100, Y: 100}, w.Position)
	assert.Equal(t, entity.Size{Width: 800, Height: 600}, w.Size)
}

func TestController_ResizeLeftAnchorsRightEdge(t *testing.T) {
	ctx := context.Background()
	store, ids := newStoreWithWindows(t, 1)
	id := ids[0]
	store.UpdateSize(ctx, id, entity.Size{Width: 400, Height: 300})

	c := NewController(store, id, DefaultConstraints())
	require.True(t, c.BeginResize(ctx, entity.ResizeLeft, entity.Point{X: 100, Y: 200}))

	c.Move(ctx, entity.Point{X: 50, Y: 200}, viewport)
	w, _ := store.Get(id)
	assert.Equal(t, 450, w.Size.Width)
	assert.Equal(t, 50, w.Position.X)

	c.Move(ctx, entity.Point{X: 300, Y: 200}, viewport)
	w, _ = store.Get(id)
	assert.Equal(t, 320, w.Size.Width)
	assert.Equal(t, 180, w.Position.X)
}

func TestController_WindowClosedDuringGesture(t *testing.T) {
	ctx := context.Background()
	store, ids := newStoreWithWindows(t, 1)
	id := ids[0]

	c := NewController(store, id, DefaultConstraints())
	require.True(t, c.BeginDrag(ctx, entity.Point{X: 110, Y: 110}))
	store.Close(ctx, id)

	assert.False(t, c.Move(ctx, entity.Point{X: 200, Y: 200}, viewport))
	assert.False(t, c.Active(), "gesture is dropped once the window is gone")
}

func TestController_BeginOnMissingWindow(t *testing.T) {
	store, _ := newStoreWithWindows(t, 0)
	c := NewController(store, "ghost", DefaultConstraints())

	assert.False(t, c.BeginDrag(context.Background(), entity.Point{}))
	assert.False(t, c.BeginResize(context.Background(), entity.ResizeTop, entity.Point{}))
	assert.False(t, c.BeginResize(context.Background(), entity.ResizeNone, entity.Point{}))
	assert.False(t, c.Active())
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(id entity.WindowID) (entity.Window, bool) {
	args := m.Called(id)
	return args.Get(0).(entity.Window), args.Bool(1)
}

func (m *mockStore) Focus(ctx context.Context, id entity.WindowID) bool {
	return m.Called(ctx, id).Bool(0)
}

func (m *mockStore) UpdatePosition(ctx context.Context, id entity.WindowID, pos entity.Point) bool {
	return m.Called(ctx, id, pos).Bool(0)
}

func (m *mockStore) UpdateSize(ctx context.Context, id entity.WindowID, size entity.Size) bool {
	return m.Called(ctx, id, size).Bool(0)
}

func TestController_ResizeRightSkipsPositionUpdate(t *testing.T) {
	ctx := context.Background()
	w := entity.Window{
		ID:       "w",
		Position: entity.Point{X: 100, Y: 100},
		Size:     entity.Size{Width: 400, Height: 300},
	}

	store := new(mockStore)
	store.On("Focus", ctx, entity.WindowID("w")).Return(true).Once()
	store.On("Get", entity.WindowID("w")).Return(w, true)
	store.On("UpdateSize", ctx, entity.WindowID("w"), entity.Size{Width: 450, Height: 330}).Return(true).Once()

	c := NewController(store, "w", DefaultConstraints())
	require.True(t, c.BeginResize(ctx, entity.ResizeBottomRight, entity.Point{X: 500, Y: 400}))
	assert.True(t, c.Move(ctx, entity.Point{X: 550, Y: 430}, viewport))

	store.AssertExpectations(t)
	store.AssertNotCalled(t, "UpdatePosition", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_ResizeTopUpdatesPosition(t *testing.T) {
	ctx := context.Background()
	w := entity.Window{
		ID:       "w",
		Position: entity.Point{X: 100, Y: 100},
		Size:     entity.Size{Width: 400, Height: 300},
	}

	store := new(mockStore)
	store.On("Focus", ctx, entity.WindowID("w")).Return(true).Once()
	store.On("Get", entity.WindowID("w")).Return(w, true)
	store.On("UpdateSize", ctx, entity.WindowID("w"), entity.Size{Width: 400, Height: 350}).Return(true).Once()
	store.On("UpdatePosition", ctx, entity.WindowID("w"), entity.Point{X: 100, Y: 50}).Return(true).Once()

	c := NewController(store, "w", DefaultConstraints())
	require.True(t, c.BeginResize(ctx, entity.ResizeTop, entity.Point{X: 300, Y: 100}))
	assert.True(t, c.Move(ctx, entity.Point{X: 300, Y: 50}, viewport))

	store.AssertExpectations(t)
}
