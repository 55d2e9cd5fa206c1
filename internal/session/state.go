package session

import (
	"errors"
	"fmt"
)

// State is a step of the fortune flow as seen by the UI.
type State string

const (
	StateLanding State = "landing"
	StateInput   State = "input"
	StateLoading State = "loading"
	StateResult  State = "result"
)

// Event moves a session from one state to another.
type Event string

const (
	EventStart    Event = "start"
	EventSubmit   Event = "submit"
	EventComplete Event = "complete"
	EventReset    Event = "reset"
)

// ErrInvalidTransition is returned when an event is not accepted in the
// current state.
var ErrInvalidTransition = errors.New("invalid session transition")

var transitions = map[State]map[Event]State{
	StateLanding: {EventStart: StateInput},
	StateInput:   {EventSubmit: StateLoading},
	StateLoading: {EventComplete: StateResult},
	StateResult:  {EventReset: StateInput},
}

// Next returns the state reached by applying e in s.
func Next(s State, e Event) (State, error) {
	if to, ok := transitions[s][e]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}

// ParseEvent validates a wire event name.
func ParseEvent(name string) (Event, bool) {
	switch e := Event(name); e {
	case EventStart, EventSubmit, EventComplete, EventReset:
		return e, true
	}
	return "", false
}
