package shell

import (
	"errors"
	"fmt"
)

// ErrUnknownPowerAction is returned for power option names that do not exist.
var ErrUnknownPowerAction = errors.New("unknown power action")

// PowerAction is an entry of the power menu.
type PowerAction string

const (
	PowerSleep    PowerAction = "sleep"
	PowerRestart  PowerAction = "restart"
	PowerShutdown PowerAction = "shutdown"
)

// PowerActions returns the power menu entries in display order.
func PowerActions() []PowerAction {
	return []PowerAction{PowerSleep, PowerRestart, PowerShutdown}
}

// Label returns the menu label.
func (a PowerAction) Label() string {
	switch a {
	case PowerSleep:
		return "Sleep"
	case PowerRestart:
		return "Restart"
	case PowerShutdown:
		return "Shut down"
	default:
		return string(a)
	}
}

// ParsePowerAction validates a power option name.
func ParsePowerAction(s string) (PowerAction, error) {
	for _, a := range PowerActions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPowerAction, s)
}
