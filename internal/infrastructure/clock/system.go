// Package clock provides the wall clock used by the shell.
package clock

import (
	"time"

	"github.com/bnema/dumbtop/internal/application/port"
)

// System reads the local wall clock.
type System struct{}

var _ port.Clock = System{}

func (System) Now() time.Time { return time.Now() }
