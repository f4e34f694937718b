package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// WindowDefaults controls where and how large new windows open.
type WindowDefaults struct {
	Origin      entity.Point // Top-left of the first window
	CascadeStep int          // Offset per already-open window, on both axes
	Size        entity.Size
}

// DefaultWindowDefaults returns the stock placement: 800x600 at (100,100), cascading by 20px.
func DefaultWindowDefaults() WindowDefaults {
	return WindowDefaults{
		Origin:      entity.Point{X: 100, Y: 100},
		CascadeStep: 20,
		Size:        entity.Size{Width: 800, Height: 600},
	}
}

// SnapshotListener receives every published snapshot.
type SnapshotListener func(entity.Snapshot)

type subscription struct {
	id       uint64
	listener SnapshotListener
}

// WindowStore owns the ordered collection of window records.
//
// Every operation is total: unknown ids are silently ignored. Mutations never
// touch a published slice; they build a new one and publish it under a new
// revision, so holders of an older snapshot keep a consistent view.
type WindowStore struct {
	idGenerator IDGenerator

	mu          sync.Mutex
	defaults    WindowDefaults
	snapshot    entity.Snapshot
	subscribers []subscription
	nextSubID   uint64
}

// NewWindowStore creates an empty store.
func NewWindowStore(idGenerator IDGenerator, defaults WindowDefaults) *WindowStore {
	return &WindowStore{
		idGenerator: idGenerator,
		defaults:    defaults,
	}
}

// SetDefaults replaces the placement used by subsequent Open calls.
func (s *WindowStore) SetDefaults(defaults WindowDefaults) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = defaults
}

// Snapshot returns the current collection and its revision.
func (s *WindowStore) Snapshot() entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Windows returns the current collection in opening order.
func (s *WindowStore) Windows() entity.WindowList {
	return s.Snapshot().Windows
}

// Get returns the record with the given id.
func (s *WindowStore) Get(id entity.WindowID) (entity.Window, bool) {
	return s.Snapshot().Windows.Find(id)
}

// Subscribe registers a listener called after every effective mutation.
// Listeners run outside the store lock, on the goroutine that mutated.
// The returned function removes the listener; calling it twice is safe.
func (s *WindowStore) Subscribe(listener SnapshotListener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, listener: listener})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Open creates a focused window on top of the stack and returns its id.
func (s *WindowStore) Open(ctx context.Context, kind entity.AppKind, title string) entity.WindowID {
	log := logging.FromContext(ctx)

	var created entity.Window
	s.mutate(func(windows entity.WindowList) (entity.WindowList, bool) {
		offset := len(windows) * s.defaults.CascadeStep
		stackOrder := 1
		if len(windows) > 0 {
			stackOrder = windows.MaxStackOrder() + 1
		}

		created = entity.Window{
			ID:    s.newID(windows),
			Kind:  kind,
			Title: title,
			Position: entity.Point{
				X: s.defaults.Origin.X + offset,
				Y: s.defaults.Origin.Y + offset,
			},
			Size:       s.defaults.Size,
			StackOrder: stackOrder,
			Focused:    true,
		}

		next := make(entity.WindowList, 0, len(windows)+1)
		for _, w := range windows {
			w.Focused = false
			next = append(next, w)
		}
		return append(next, created), true
	})

	log.Info().
		Str("window_id", string(created.ID)).
		Str("kind", kind.String()).
		Int("x", created.Position.X).
		Int("y", created.Position.Y).
		Int("stack_order", created.StackOrder).
		Msg("window opened")

	return created.ID
}

// Close removes the window. It reports whether the window existed.
func (s *WindowStore) Close(ctx context.Context, id entity.WindowID) bool {
	log := logging.FromContext(logging.WithWindowID(ctx, string(id)))

	closed := s.mutate(func(windows entity.WindowList) (entity.WindowList, bool) {
		i := windows.Index(id)
		if i < 0 {
			return nil, false
		}
		next := make(entity.WindowList, 0, len(windows)-1)
		next = append(next, windows[:i]...)
		return append(next, windows[i+1:]...), true
	})

	if !closed {
		log.Debug().Msg("close ignored, window not found")
		return false
	}
	log.Info().Msg("window closed")
	return true
}

// Focus raises the window above every other one, restores it if minimized
// and makes it the only focused window.
func (s *WindowStore) Focus(ctx context.Context, id entity.WindowID) bool {
	log := logging.FromContext(logging.WithWindowID(ctx, string(id)))

	focused := s.mutate(func(windows entity.WindowList) (entity.WindowList, bool) {
		if windows.Index(id) < 0 {
			return nil, false
		}
		return raise(windows, id), true
	})

	if !focused {
		log.Debug().Msg("focus ignored, window not found")
		return false
	}
	log.Debug().Msg("window focused")
	return true
}

// Minimize hides the window. A minimized window never keeps focus; focus is
// not handed to another window.
func (s *WindowStore) Minimize(ctx context.Context, id entity.WindowID) bool {
	log := logging.FromContext(logging.WithWindowID(ctx, string(id)))

	minimized := s.update(id, func(w *entity.Window) {
		w.Minimized = true
		w.Focused = false
	})

	if !minimized {
		log.Debug().Msg("minimize ignored, window not found")
		return false
	}
	log.Debug().Msg("window minimized")
	return true
}

// Maximize flips the maximized flag. Stored geometry is left untouched so
// the window restores to it.
func (s *WindowStore) Maximize(ctx context.Context, id entity.WindowID) bool {
	log := logging.FromContext(logging.WithWindowID(ctx, string(id)))

	var maximized bool
	found := s.update(id, func(w *entity.Window) {
		w.Maximized = !w.Maximized
		maximized = w.Maximized
	})

	if !found {
		log.Debug().Msg("maximize ignored, window not found")
		return false
	}
	log.Debug().Bool("maximized", maximized).Msg("window maximize toggled")
	return true
}

// Toggle implements the taskbar button: restore a minimized window,
// minimize the focused one, focus any other.
func (s *WindowStore) Toggle(ctx context.Context, id entity.WindowID) bool {
	log := logging.FromContext(logging.WithWindowID(ctx, string(id)))

	var action string
	found := s.mutate(func(windows entity.WindowList) (entity.WindowList, bool) {
		i := windows.Index(id)
		if i < 0 {
			return nil, false
		}
		switch w := windows[i]; {
		case w.Minimized:
			action = "restore"
			return raise(windows, id), true
		case w.Focused:
			action = "minimize"
			next := clone(windows)
			next[i].Minimized = true
			next[i].Focused = false
			return next, true
		default:
			action = "focus"
			return raise(windows, id), true
		}
	})

	if !found {
		log.Debug().Msg("toggle ignored, window not found")
		return false
	}
	log.Debug().Str("action", action).Msg("window toggled")
	return true
}

// UpdatePosition overwrites the stored top-left. No clamping is applied.
func (s *WindowStore) UpdatePosition(ctx context.Context, id entity.WindowID, pos entity.Point) bool {
	found := s.update(id, func(w *entity.Window) {
		w.Position = pos
	})
	if !found {
		logging.FromContext(ctx).Debug().Str("window_id", string(id)).Msg("position update ignored, window not found")
	}
	return found
}

// UpdateSize overwrites the stored size. No clamping is applied.
func (s *WindowStore) UpdateSize(ctx context.Context, id entity.WindowID, size entity.Size) bool {
	found := s.update(id, func(w *entity.Window) {
		w.Size = size
	})
	if !found {
		logging.FromContext(ctx).Debug().Str("window_id", string(id)).Msg("size update ignored, window not found")
	}
	return found
}

// update applies fn to a copy of the matching record.
func (s *WindowStore) update(id entity.WindowID, fn func(*entity.Window)) bool {
	return s.mutate(func(windows entity.WindowList) (entity.WindowList, bool) {
		i := windows.Index(id)
		if i < 0 {
			return nil, false
		}
		next := clone(windows)
		fn(&next[i])
		return next, true
	})
}

// mutate runs fn under the lock and publishes its result when it reports a change.
func (s *WindowStore) mutate(fn func(entity.WindowList) (entity.WindowList, bool)) bool {
	s.mu.Lock()
	next, changed := fn(s.snapshot.Windows)
	if !changed {
		s.mu.Unlock()
		return false
	}

	s.snapshot = entity.Snapshot{Revision: s.snapshot.Revision + 1, Windows: next}
	snap := s.snapshot
	listeners := make([]SnapshotListener, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		listeners = append(listeners, sub.listener)
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(snap)
	}
	return true
}

// newID draws ids until one is free. Must be called with the lock held.
func (s *WindowStore) newID(windows entity.WindowList) entity.WindowID {
	id := entity.WindowID(s.idGenerator())
	for attempt := 1; id == "" || windows.Index(id) >= 0; attempt++ {
		id = entity.WindowID(fmt.Sprintf("%s-%d", s.idGenerator(), attempt))
	}
	return id
}

// raise returns a copy where id is frontmost, focused and not minimized.
func raise(windows entity.WindowList, id entity.WindowID) entity.WindowList {
	top := windows.MaxStackOrder() + 1
	next := clone(windows)
	for i := range next {
		if next[i].ID == id {
			next[i].StackOrder = top
			next[i].Focused = true
			next[i].Minimized = false
			continue
		}
		next[i].Focused = false
	}
	return next
}

func clone(windows entity.WindowList) entity.WindowList {
	next := make(entity.WindowList, len(windows))
	copy(next, windows)
	return next
}
