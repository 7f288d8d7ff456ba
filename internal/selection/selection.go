// Package selection tracks which preset, if any, the detail view is showing.
package selection

import "go.seanlatimer.dev/amhub/internal/catalog"

type State int

const (
	Idle State = iota
	Viewing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Viewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// Selection holds at most one preset. The zero value is Idle.
type Selection struct {
	state  State
	preset catalog.Preset
}

// Select moves to Viewing(p) from any state.
func (s *Selection) Select(p catalog.Preset) {
	s.state = Viewing
	s.preset = p
}

// Dismiss returns to Idle. Dismissing while Idle does nothing.
func (s *Selection) Dismiss() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	s.preset = catalog.Preset{}
}

func (s *Selection) State() State {
	return s.state
}

func (s *Selection) Current() (catalog.Preset, bool) {
	if s.state != Viewing {
		return catalog.Preset{}, false
	}
	return s.preset, true
}
