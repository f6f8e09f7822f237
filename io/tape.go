package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/lmc/cpu"
)

// Tape reads input values, one decimal per line, and writes output values,
// one per line. Blank input lines are skipped.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	lineNo  int
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive reads the next input value.
func (tc *Tape) Receive() (value int16, err error) {
	if tc.Input == nil {
		err = ErrChannelEmpty
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
	}

	for tc.scanner.Scan() {
		tc.lineNo++
		text := strings.TrimSpace(tc.scanner.Text())
		if len(text) == 0 {
			continue
		}
		value, err = cpu.ParseInput(text)
		if err != nil {
			err = ErrTapeValue{LineNo: tc.lineNo, Text: text, Err: err}
		}
		return
	}

	err = tc.scanner.Err()
	if err == nil {
		err = ErrChannelEmpty
	}

	return
}

// Send writes an output value on its own line.
func (tc *Tape) Send(text string) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintln(tc.Output, text)
	return
}
