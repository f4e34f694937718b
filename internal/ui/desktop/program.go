package desktop

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/ui/frame"
)

// ProgramOptions selects terminal features.
type ProgramOptions struct {
	AltScreen bool
	Mouse     bool
	// OnViewport is called from the update loop whenever the desktop area or
	// the window constraints change.
	OnViewport func(viewport entity.Size, c frame.Constraints)
}

// NewProgram wires m to the store's snapshots and returns the program and a
// function that stops the subscription.
//
// The store notifies on the goroutine that mutated it, which is often the
// program's own update loop, so notifications are coalesced into a one-slot
// channel instead of being sent to the program directly.
func NewProgram(ctx context.Context, m Model, opts ProgramOptions) (*tea.Program, func()) {
	changes := make(chan struct{}, 1)
	unsubscribe := m.store.Subscribe(func(entity.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	m.changes = changes
	m.onViewport = opts.OnViewport

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(m, programOpts...), unsubscribe
}
