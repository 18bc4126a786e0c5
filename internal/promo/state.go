package promo

import "fmt"

// State is the lifecycle phase of an in-flight generation.
type State int

const (
	StatePending State = iota
	StateDone
	StateError
)

// String returns the state name for progress output.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Generation tracks the state of a single generation run. Transitions are
// monotonic: pending may move to done or error exactly once, both of which
// are terminal.
type Generation struct {
	state    State
	imageURL string
	source   string
	errMsg   string
}

// NewGeneration starts a generation in the pending state.
func NewGeneration() *Generation {
	return &Generation{state: StatePending}
}

// State returns the current lifecycle phase.
func (g *Generation) State() State {
	return g.state
}

// Complete transitions pending -> done with the resolved image.
func (g *Generation) Complete(imageURL, source string) error {
	if g.state != StatePending {
		return fmt.Errorf("cannot complete generation in state %s", g.state)
	}
	g.state = StateDone
	g.imageURL = imageURL
	g.source = source
	return nil
}

// Fail transitions pending -> error with a user-facing message.
func (g *Generation) Fail(msg string) error {
	if g.state != StatePending {
		return fmt.Errorf("cannot fail generation in state %s", g.state)
	}
	g.state = StateError
	g.errMsg = msg
	return nil
}

// Result returns the resolved image URL and source description. Both are
// empty unless the generation is done.
func (g *Generation) Result() (imageURL, source string) {
	return g.imageURL, g.source
}

// Err returns the failure message, empty unless the generation errored.
func (g *Generation) Err() string {
	return g.errMsg
}
