package io

// Rom serves a fixed list of input values, and records all output.
type Rom struct {
	Data   []int16  // Input values.
	Output []string // Output values sent since the last rewind.

	index int
}

var _ Channel = (*Rom)(nil)

// Rewind restarts the input and clears the output.
func (rc *Rom) Rewind() {
	rc.index = 0
	rc.Output = nil
}

// Receive returns the next input value.
func (rc *Rom) Receive() (value int16, err error) {
	if rc.index >= len(rc.Data) {
		err = ErrChannelEmpty
		return
	}

	value = rc.Data[rc.index]
	rc.index++
	return
}

// Send records an output value.
func (rc *Rom) Send(text string) error {
	rc.Output = append(rc.Output, text)
	return nil
}
