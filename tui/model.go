// Package tui is a terminal debugger for Little Man Computer programs.
//
// The Model holds the debugger state and turns user actions into runtime
// requests; the Debugger draws it with tview. The Model is only touched
// from the tview event goroutine.
package tui

import (
	"errors"
	"time"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

// Driver accepts requests for the execution task.
type Driver interface {
	TrySend(req emulator.Request) error
}

var _ Driver = (*emulator.Runtime)(nil)

// Model is the state of the debugger.
type Model struct {
	Driver   Driver        // Execution task.
	Interval time.Duration // Pace of run mode.

	State   cpu.Computer // Last machine snapshot.
	LineNo  int          // Source line of the next instruction.
	Output  []string     // Program output.
	Status  string       // Status line.
	Failed  bool         // Set if Status is an error.
	Running bool         // Set in run mode.
	Waiting bool         // Set while the program waits for input.
	Halted  bool         // Set once the program halts.

	pending int // Requests sent, but not yet answered.
}

// send forwards a request to the driver.
func (m *Model) send(req emulator.Request) (err error) {
	err = m.Driver.TrySend(req)
	if err != nil {
		m.setError(err)
		return
	}

	m.pending++
	return
}

func (m *Model) setStatus(text string) {
	m.Status = text
	m.Failed = false
}

func (m *Model) setError(err error) {
	m.Status = err.Error()
	m.Failed = true
	m.Running = false
}

// Assemble requests that the source be compiled and loaded.
func (m *Model) Assemble(source string) (err error) {
	m.Running = false
	err = m.send(emulator.Request{Kind: emulator.REQUEST_ASSEMBLE, Text: source})
	return
}

// Step requests a single step. Nothing is sent while the program waits for
// input or has halted.
func (m *Model) Step() (err error) {
	if m.Waiting || m.Halted {
		return
	}

	err = m.send(emulator.Request{Kind: emulator.REQUEST_STEP})
	return
}

// Reset requests a register reset, and clears the output.
func (m *Model) Reset() (err error) {
	m.Running = false
	m.Waiting = false
	m.Halted = false
	m.Output = nil

	err = m.send(emulator.Request{Kind: emulator.REQUEST_RESET})
	if err != nil {
		return
	}

	m.setStatus(f("reset"))
	return
}

// SubmitInput answers an input request.
func (m *Model) SubmitInput(text string) (err error) {
	if !m.Waiting {
		return
	}

	err = m.send(emulator.Request{Kind: emulator.REQUEST_SET_INPUT, Text: text})
	if err != nil {
		return
	}

	m.Waiting = false
	m.setStatus("")
	return
}

// Toggle starts or stops run mode.
func (m *Model) Toggle() {
	if m.Running {
		m.Running = false
		m.setStatus(f("stopped"))
		return
	}

	if m.Halted {
		return
	}

	m.Running = true
	m.setStatus(f("running"))
}

// Tick advances run mode by one step. Steps are not queued while an
// earlier request is still outstanding.
func (m *Model) Tick() (err error) {
	if !m.Running || m.Waiting || m.Halted || m.pending > 0 {
		return
	}

	err = m.Driver.TrySend(emulator.Request{Kind: emulator.REQUEST_STEP})
	switch {
	case errors.Is(err, emulator.ErrRuntimeBusy):
		// Try again next tick.
		err = nil
	case err != nil:
		m.setError(err)
	default:
		m.pending++
	}

	return
}

// Apply folds an update from the execution task into the model.
func (m *Model) Apply(update emulator.Update) {
	switch update.Kind {
	case emulator.UPDATE_STATE:
		if m.pending > 0 {
			m.pending--
		}
		m.State = update.State
		m.LineNo = update.LineNo
	case emulator.UPDATE_ASSEMBLED:
		m.Output = nil
		m.Waiting = false
		m.Halted = false
		m.setStatus(f("assembled"))
	case emulator.UPDATE_OUTPUT:
		m.Output = append(m.Output, update.Output)
	case emulator.UPDATE_INPUT:
		m.Waiting = true
		m.setStatus(f("input requested"))
	case emulator.UPDATE_HALT:
		m.Halted = true
		m.Running = false
		m.setStatus(f("halted"))
	case emulator.UPDATE_ERROR:
		m.setError(update.Err)
	}
}
