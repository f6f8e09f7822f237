// Package io provides the input and output channels of a running program.
// A Tape reads decimal values one per line and writes output one per line.
// A Rom serves a fixed list of values and records the output.
package io

// Channel services the EVENT_INPUT and EVENT_OUTPUT events of a program.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns the next input value.
	Receive() (value int16, err error)
	// Send records an output value.
	Send(text string) error
}
