package fx

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the weather effect selected by the user.
type Mode int

const (
	ModeOff Mode = iota
	ModeRain
	ModeSnow
)

var ErrUnknownMode = errors.New("unknown weather mode")

// Modes lists every mode in toggle order.
var Modes = []Mode{ModeOff, ModeRain, ModeSnow}

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeRain:
		return "rain"
	case ModeSnow:
		return "snow"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) Valid() bool { return m >= ModeOff && m <= ModeSnow }

// ParseMode accepts exactly the stored spellings "off", "rain" and "snow".
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if s == m.String() {
			return m, nil
		}
	}
	return ModeOff, fmt.Errorf("%w: %q", ErrUnknownMode, strings.TrimSpace(s))
}

// Action is what the engine has to do when entering a mode.
type Action int

const (
	ActionNone Action = iota
	// ActionHalt stops the frame loop and drops every particle.
	ActionHalt
	// ActionRebuild respawns the population for the new mode and starts the loop.
	ActionRebuild
)

func (a Action) String() string {
	switch a {
	case ActionHalt:
		return "halt"
	case ActionRebuild:
		return "rebuild"
	}
	return "none"
}

// Transition resolves a mode change. Invalid targets keep the current mode.
func Transition(from, to Mode) (Mode, Action) {
	switch {
	case !to.Valid():
		return from, ActionNone
	case to == ModeOff:
		return ModeOff, ActionHalt
	default:
		return to, ActionRebuild
	}
}
