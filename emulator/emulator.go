// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"
	"strings"
	"sync"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

// Emulator is an execution session: a Computer, and the Program it was
// assembled from. All methods are safe for concurrent use; observers get
// copies of the machine state.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	mutex    sync.Mutex
	computer cpu.Computer
	program  *asm.Program
}

// NewEmulator creates a new emulator with an empty memory.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		program: &asm.Program{},
	}

	return
}

// Assemble compiles source text and loads it. On error the loaded program
// is unchanged.
func (emu *Emulator) Assemble(source string) (err error) {
	assembler := &asm.Assembler{Verbose: emu.Verbose}
	image, err := assembler.Assemble(strings.NewReader(source))
	if err != nil {
		return
	}

	emu.Load(image, assembler.Program)
	return
}

// Load replaces memory with an image and resets the registers. The program
// is used for line number lookups, and may be nil.
func (emu *Emulator) Load(image cpu.Image, prog *asm.Program) {
	if prog == nil {
		prog = &asm.Program{}
	}

	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	emu.computer.Load(image)
	emu.program = prog
}

// Reset clears the registers, keeping memory.
func (emu *Emulator) Reset() {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	emu.computer.Reset()
}

// SetInput places an input value into the accumulator.
func (emu *Emulator) SetInput(value int16) {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	emu.computer.SetInput(value)
}

// Snapshot returns a copy of the machine state.
func (emu *Emulator) Snapshot() (state cpu.Computer) {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	state = emu.computer
	return
}

// LineNo returns the source line of the next instruction, or 0 if unknown.
func (emu *Emulator) LineNo() int {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	return emu.program.LineNo(int(emu.computer.ProgramCounter))
}

// Step executes a single instruction. Errors are returned as *ErrRuntime.
func (emu *Emulator) Step() (event cpu.Event, err error) {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	pc := int(emu.computer.ProgramCounter)
	if emu.Verbose && pc < cpu.MEMORY_SIZE {
		log.Printf("%02d: %v", pc, emu.computer.Memory[pc].Mnemonic())
	}

	event, err = emu.computer.Step()
	if err != nil {
		err = &ErrRuntime{Address: pc, LineNo: emu.program.LineNo(pc), Err: err}
		return
	}

	if emu.Verbose && event.Kind != cpu.EVENT_CONTINUE {
		log.Printf("%02d: %v %v", pc, event.Kind, event.Output)
	}

	return
}

// Run steps the program until it halts, servicing input and output with
// a channel. A positive limit bounds the number of steps.
func (emu *Emulator) Run(channel io.Channel, limit int) (steps int, err error) {
	for {
		if limit > 0 && steps >= limit {
			err = ErrStepLimit
			return
		}

		var event cpu.Event
		event, err = emu.Step()
		if err != nil {
			return
		}
		steps++

		switch event.Kind {
		case cpu.EVENT_HALT:
			return
		case cpu.EVENT_INPUT:
			var value int16
			value, err = channel.Receive()
			if err != nil {
				err = emu.inputError(err)
				return
			}
			emu.SetInput(value)
		case cpu.EVENT_OUTPUT:
			err = channel.Send(event.Output)
			if err != nil {
				return
			}
		}
	}
}

// inputError locates a failed input at the INP instruction just executed.
func (emu *Emulator) inputError(err error) error {
	emu.mutex.Lock()
	defer emu.mutex.Unlock()

	pc := (int(emu.computer.ProgramCounter) + cpu.MEMORY_SIZE - 1) % cpu.MEMORY_SIZE
	return &ErrRuntime{Address: pc, LineNo: emu.program.LineNo(pc), Err: err}
}
