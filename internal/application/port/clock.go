package port

import "time"

// Clock provides the current time. The desktop uses it for the taskbar clock
// and to measure double clicks.
type Clock interface {
	Now() time.Time
}
