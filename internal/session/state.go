package session

// State identifies where a request cycle is in the loop.
type State int

const (
	StateAwaitInput State = iota
	StateFetching
	StateGenerating
	StateRendering
	StateExiting
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateAwaitInput:
		return "AwaitInput"
	case StateFetching:
		return "Fetching"
	case StateGenerating:
		return "Generating"
	case StateRendering:
		return "Rendering"
	case StateExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}
