package emulator

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/ezrec/lmc/cpu"
)

// RUNTIME_CAPACITY is the default depth of the request queue.
const RUNTIME_CAPACITY = 100

// RequestKind is the kind of a request to the Runtime.
type RequestKind int

//go:generate go tool stringer -linecomment -type=RequestKind
const (
	REQUEST_ASSEMBLE  = RequestKind(0) // assemble
	REQUEST_SET_INPUT = RequestKind(1) // set-input
	REQUEST_STEP      = RequestKind(2) // step
	REQUEST_RESET     = RequestKind(3) // reset
)

// Request asks the Runtime to act on its Emulator.
type Request struct {
	Kind RequestKind
	Text string // Source for REQUEST_ASSEMBLE, value for REQUEST_SET_INPUT.
}

// UpdateKind is the kind of an update from the Runtime.
type UpdateKind int

//go:generate go tool stringer -linecomment -type=UpdateKind
const (
	UPDATE_STATE     = UpdateKind(0) // state
	UPDATE_ASSEMBLED = UpdateKind(1) // assembled
	UPDATE_OUTPUT    = UpdateKind(2) // output
	UPDATE_INPUT     = UpdateKind(3) // input
	UPDATE_HALT      = UpdateKind(4) // halt
	UPDATE_ERROR     = UpdateKind(5) // error
)

// Update reports the outcome of a request.
type Update struct {
	Kind   UpdateKind
	State  cpu.Computer // Machine state after the request.
	LineNo int          // Source line of the next instruction.
	Output string       // Value for UPDATE_OUTPUT.
	Err    error        // Error for UPDATE_ERROR.
}

// Runtime is the execution task. It owns an Emulator, processes requests
// one at a time in order, and publishes updates. Every request is followed
// by an UPDATE_STATE carrying a snapshot of the machine.
type Runtime struct {
	Verbose  bool      // If set, logs each request.
	Emulator *Emulator // Session driven by the runtime.

	requests  chan Request
	updates   chan Update
	done      chan struct{}
	closeOnce sync.Once
	started   atomic.Bool
}

// NewRuntime creates a runtime for an emulator. A capacity of zero or less
// selects RUNTIME_CAPACITY.
func NewRuntime(emu *Emulator, capacity int) (rt *Runtime) {
	if capacity <= 0 {
		capacity = RUNTIME_CAPACITY
	}

	rt = &Runtime{
		Emulator: emu,
		requests: make(chan Request, capacity),
		updates:  make(chan Update, capacity),
		done:     make(chan struct{}),
	}

	return
}

// Send queues a request, blocking while the queue is full.
func (rt *Runtime) Send(ctx context.Context, req Request) (err error) {
	select {
	case <-rt.done:
		err = ErrRuntimeClosed
		return
	default:
	}

	select {
	case rt.requests <- req:
	case <-rt.done:
		err = ErrRuntimeClosed
	case <-ctx.Done():
		err = ctx.Err()
	}

	return
}

// TrySend queues a request, failing with ErrRuntimeBusy if the queue is full.
func (rt *Runtime) TrySend(req Request) (err error) {
	select {
	case <-rt.done:
		err = ErrRuntimeClosed
		return
	default:
	}

	select {
	case rt.requests <- req:
	default:
		err = ErrRuntimeBusy
	}

	return
}

// Updates returns the update stream. It is closed when Run returns.
func (rt *Runtime) Updates() <-chan Update {
	return rt.updates
}

// Close stops the runtime. Requests still queued are dropped.
func (rt *Runtime) Close() (err error) {
	rt.closeOnce.Do(func() {
		close(rt.done)
	})

	return
}

// publish sends an update, giving up when the runtime stops.
func (rt *Runtime) publish(ctx context.Context, update Update) (ok bool) {
	select {
	case rt.updates <- update:
		ok = true
	case <-rt.done:
	case <-ctx.Done():
	}

	return
}

// handle processes one request, returning the updates it causes.
func (rt *Runtime) handle(req Request) (updates []Update) {
	emu := rt.Emulator

	if rt.Verbose {
		log.Printf("runtime: %v", req.Kind)
	}

	switch req.Kind {
	case REQUEST_ASSEMBLE:
		err := emu.Assemble(req.Text)
		if err != nil {
			updates = append(updates, Update{Kind: UPDATE_ERROR, Err: err})
		} else {
			updates = append(updates, Update{Kind: UPDATE_ASSEMBLED})
		}
	case REQUEST_SET_INPUT:
		emu.SetInput(cpu.ParseInputOrZero(req.Text))
	case REQUEST_STEP:
		event, err := emu.Step()
		switch {
		case err != nil:
			updates = append(updates, Update{Kind: UPDATE_ERROR, Err: err})
		case event.Kind == cpu.EVENT_HALT:
			updates = append(updates, Update{Kind: UPDATE_HALT})
		case event.Kind == cpu.EVENT_INPUT:
			updates = append(updates, Update{Kind: UPDATE_INPUT})
		case event.Kind == cpu.EVENT_OUTPUT:
			updates = append(updates, Update{Kind: UPDATE_OUTPUT, Output: event.Output})
		}
	case REQUEST_RESET:
		emu.Reset()
	}

	updates = append(updates, Update{Kind: UPDATE_STATE})

	state := emu.Snapshot()
	lineNo := emu.LineNo()
	for n := range updates {
		updates[n].State = state
		updates[n].LineNo = lineNo
	}

	return
}

// Run processes requests until the runtime is closed or the context ends.
// A runtime runs once; later calls return ErrRuntimeClosed.
func (rt *Runtime) Run(ctx context.Context) (err error) {
	if !rt.started.CompareAndSwap(false, true) {
		err = ErrRuntimeClosed
		return
	}
	defer close(rt.updates)

	for {
		select {
		case <-rt.done:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		case req := <-rt.requests:
			for _, update := range rt.handle(req) {
				if !rt.publish(ctx, update) {
					return
				}
			}
		}
	}
}
