package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtop/internal/domain/entity"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("win-%d", n)
	}
}

func newTestStore() *WindowStore {
	return NewWindowStore(sequentialIDs(), DefaultWindowDefaults())
}

func mustGet(t *testing.T, s *WindowStore, id entity.WindowID) entity.Window {
	t.Helper()
	w, ok := s.Get(id)
	require.True(t, ok, "window %s should exist", id)
	return w
}

func focusedCount(windows entity.WindowList) int {
	n := 0
	for _, w := range windows {
		if w.Focused {
			n++
		}
	}
	return n
}

func TestWindowStore_Open_Defaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first := s.Open(ctx, entity.AppNotepad, "Notepad")
	second := s.Open(ctx, entity.AppTerminal, "Terminal")

	a := mustGet(t, s, first)
	assert.Equal(t, entity.AppNotepad, a.Kind)
	assert.Equal(t, "Notepad", a.Title)
	assert.Equal(t, entity.Point{X: 100, Y: 100}, a.Position)
	assert.Equal(t, entity.Size{Width: 800, Height: 600}, a.Size)
	assert.Equal(t, 1, a.StackOrder)
	assert.False(t, a.Minimized)
	assert.False(t, a.Maximized)

	b := mustGet(t, s, second)
	assert.Equal(t, entity.Point{X: 120, Y: 120}, b.Position)
	assert.Equal(t, 2, b.StackOrder)
	assert.True(t, b.Focused)
	assert.Equal(t, 1, focusedCount(s.Windows()))
}

func TestWindowStore_Open_StackOrderAboveMax(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	a := s.Open(ctx, entity.AppNotepad, "A")
	b := s.Open(ctx, entity.AppNotepad, "B")
	s.Focus(ctx, a)
	s.Focus(ctx, b)
	s.Close(ctx, a)

	c := s.Open(ctx, entity.AppNotepad, "C")

	assert.Greater(t, mustGet(t, s, c).StackOrder, mustGet(t, s, b).StackOrder)
}

func TestWindowStore_Open_CustomDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewWindowStore(sequentialIDs(), WindowDefaults{
		Origin:      entity.Point{X: 10, Y: 5},
		CascadeStep: 7,
		Size:        entity.Size{Width: 400, Height: 300},
	})

	s.Open(ctx, entity.AppNotepad, "A")
	id := s.Open(ctx, entity.AppNotepad, "B")

	w := mustGet(t, s, id)
	assert.Equal(t, entity.Point{X: 17, Y: 12}, w.Position)
	assert.Equal(t, entity.Size{Width: 400, Height: 300}, w.Size)
}

func TestWindowStore_Open_IDsPairwiseDistinct(t *testing.T) {
	ctx := context.Background()
	s := NewWindowStore(func() string { return uuid.New().String() }, DefaultWindowDefaults())

	seen := make(map[entity.WindowID]bool)
	for i := 0; i < 50; i++ {
		id := s.Open(ctx, entity.AppTerminal, "Terminal")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, s.Windows(), 50)
}

func TestWindowStore_Open_CollidingGenerator(t *testing.T) {
	ctx := context.Background()
	s := NewWindowStore(func() string { return "same" }, DefaultWindowDefaults())

	a := s.Open(ctx, entity.AppNotepad, "A")
	b := s.Open(ctx, entity.AppNotepad, "B")
	c := s.Open(ctx, entity.AppNotepad, "C")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.NotEqual(t, a, c)
}

func TestWindowStore_Focus_ExactlyOneFocused(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	ids := []entity.WindowID{
		s.Open(ctx, entity.AppNotepad, "A"),
		s.Open(ctx, entity.AppBrowser, "B"),
		s.Open(ctx, entity.AppSettings, "C"),
	}

	for _, id := range ids {
		require.True(t, s.Focus(ctx, id))
		focused, ok := s.Windows().Focused()
		require.True(t, ok)
		assert.Equal(t, id, focused.ID)
		assert.Equal(t, 1, focusedCount(s.Windows()))
		assert.Equal(t, s.Windows().MaxStackOrder(), focused.StackOrder)
	}
}

func TestWindowStore_Focus_RestoresMinimized(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id := s.Open(ctx, entity.AppNotepad, "A")
	s.Minimize(ctx, id)

	s.Focus(ctx, id)

	w := mustGet(t, s, id)
	assert.False(t, w.Minimized)
	assert.True(t, w.Focused)
}

func TestWindowStore_Scenario_FocusReordersStack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	a := s.Open(ctx, entity.AppNotepad, "Notepad")
	b := s.Open(ctx, entity.AppTerminal, "Terminal")

	wa, wb := mustGet(t, s, a), mustGet(t, s, b)
	assert.Greater(t, wb.StackOrder, wa.StackOrder)
	assert.True(t, wb.Focused)
	assert.False(t, wa.Focused)

	s.Focus(ctx, a)

	wa, wb = mustGet(t, s, a), mustGet(t, s, b)
	assert.Greater(t, wa.StackOrder, wb.StackOrder)
	assert.True(t, wa.Focused)
	assert.False(t, wb.Focused)
}

func TestWindowStore_Close_ThenEverythingIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	keep := s.Open(ctx, entity.AppNotepad, "Keep")
	id := s.Open(ctx, entity.AppTerminal, "Gone")

	require.True(t, s.Close(ctx, id))
	before := s.Snapshot()

	assert.NotPanics(t, func() {
		assert.False(t, s.Close(ctx, id))
		assert.False(t, s.Focus(ctx, id))
		assert.False(t, s.Minimize(ctx, id))
		assert.False(t, s.Maximize(ctx, id))
		assert.False(t, s.Toggle(ctx, id))
		assert.False(t, s.UpdatePosition(ctx, id, entity.Point{X: 1, Y: 1}))
		assert.False(t, s.UpdateSize(ctx, id, entity.Size{Width: 1, Height: 1}))
	})

	after := s.Snapshot()
	assert.Equal(t, before.Revision, after.Revision)
	assert.Equal(t, before.Windows, after.Windows)
	assert.Len(t, after.Windows, 1)
	assert.Equal(t, keep, after.Windows[0].ID)
}

func TestWindowStore_Close_DoesNotRefocus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.Open(ctx, entity.AppNotepad, "A")
	b := s.Open(ctx, entity.AppNotepad, "B")

	s.Close(ctx, b)

	assert.Equal(t, 0, focusedCount(s.Windows()))
}

func TestWindowStore_Minimize_ClearsFocus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	a := s.Open(ctx, entity.AppNotepad, "A")
	b := s.Open(ctx, entity.AppNotepad, "B")

	require.True(t, s.Minimize(ctx, b))

	wb := mustGet(t, s, b)
	assert.True(t, wb.Minimized)
	assert.False(t, wb.Focused, "a minimized window never keeps focus")
	// focus is not handed over
	assert.False(t, mustGet(t, s, a).Focused)
	assert.Equal(t, 0, focusedCount(s.Windows()))
}

func TestWindowStore_Minimize_LeavesOtherFocusAlone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	a := s.Open(ctx, entity.AppNotepad, "A")
	b := s.Open(ctx, entity.AppNotepad, "B")

	s.Minimize(ctx, a)

	assert.True(t, mustGet(t, s, b).Focused)
	assert.False(t, mustGet(t, s, b).Minimized)
}

func TestWindowStore_Maximize_RoundTripKeepsGeometry(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id := s.Open(ctx, entity.AppNotepad, "A")
	s.UpdatePosition(ctx, id, entity.Point{X: 42, Y: 17})
	s.UpdateSize(ctx, id, entity.Size{Width: 512, Height: 384})
	before := mustGet(t, s, id)

	s.Maximize(ctx, id)
	assert.True(t, mustGet(t, s, id).Maximized)

	s.Maximize(ctx, id)
	after := mustGet(t, s, id)
	assert.False(t, after.Maximized)
	assert.Equal(t, before.Position, after.Position)
	assert.Equal(t, before.Size, after.Size)
}

func TestWindowStore_Toggle_ThreeWay(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id := s.Open(ctx, entity.AppNotepad, "A")

	s.Toggle(ctx, id)
	w := mustGet(t, s, id)
	assert.True(t, w.Minimized)
	assert.False(t, w.Focused)

	s.Toggle(ctx, id)
	w = mustGet(t, s, id)
	assert.False(t, w.Minimized)
	assert.True(t, w.Focused)
}

func TestWindowStore_Toggle_UnfocusedVisibleGetsFocus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	a := s.Open(ctx, entity.AppNotepad, "A")
	b := s.Open(ctx, entity.AppNotepad, "B")

	s.Toggle(ctx, a)

	wa := mustGet(t, s, a)
	assert.True(t, wa.Focused)
	assert.False(t, wa.Minimized)
	assert.Greater(t, wa.StackOrder, mustGet(t, s, b).StackOrder)
	assert.False(t, mustGet(t, s, b).Focused)
}

func TestWindowStore_Toggle_RestoreRaisesAboveMax(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	a := s.Open(ctx, entity.AppNotepad, "A")
	b := s.Open(ctx, entity.AppNotepad, "B")
	s.Minimize(ctx, a)

	s.Toggle(ctx, a)

	assert.Greater(t, mustGet(t, s, a).StackOrder, mustGet(t, s, b).StackOrder)
	assert.Equal(t, 1, focusedCount(s.Windows()))
}

func TestWindowStore_UpdateGeometry_Unclamped(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id := s.Open(ctx, entity.AppNotepad, "A")

	s.UpdatePosition(ctx, id, entity.Point{X: -500, Y: -500})
	s.UpdateSize(ctx, id, entity.Size{Width: 1, Height: 1})

	w := mustGet(t, s, id)
	assert.Equal(t, entity.Point{X: -500, Y: -500}, w.Position)
	assert.Equal(t, entity.Size{Width: 1, Height: 1}, w.Size)
}

func TestWindowStore_SnapshotsAreImmutable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id := s.Open(ctx, entity.AppNotepad, "A")

	old := s.Snapshot()
	s.UpdatePosition(ctx, id, entity.Point{X: 5, Y: 5})
	s.Minimize(ctx, id)

	assert.Equal(t, entity.Point{X: 100, Y: 100}, old.Windows[0].Position)
	assert.False(t, old.Windows[0].Minimized)
	assert.Greater(t, s.Snapshot().Revision, old.Revision)
}

func TestWindowStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var revisions []uint64
	unsubscribe := s.Subscribe(func(snap entity.Snapshot) {
		revisions = append(revisions, snap.Revision)
	})

	id := s.Open(ctx, entity.AppNotepad, "A")
	s.Focus(ctx, id)
	s.Close(ctx, "missing")

	assert.Equal(t, []uint64{1, 2}, revisions)

	unsubscribe()
	unsubscribe()
	s.Close(ctx, id)
	assert.Len(t, revisions, 2)
}

func TestWindowStore_Subscribe_ListenerMayReadStore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var seen int
	s.Subscribe(func(snap entity.Snapshot) {
		seen = len(s.Windows())
		assert.Equal(t, snap.Revision, s.Snapshot().Revision)
	})

	s.Open(ctx, entity.AppNotepad, "A")
	assert.Equal(t, 1, seen)
}
