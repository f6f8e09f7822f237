package cpu

// EventKind is the outcome of a single step.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_CONTINUE = EventKind(0) // continue
	EVENT_HALT     = EventKind(1) // halt
	EVENT_INPUT    = EventKind(2) // input
	EVENT_OUTPUT   = EventKind(3) // output
)

// Event reports what a step did.
type Event struct {
	Kind   EventKind
	Output string // Accumulator as decimal text, for EVENT_OUTPUT.
}
